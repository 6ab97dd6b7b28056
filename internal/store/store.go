// Package store persists propagation runs under a data directory: one
// subdirectory per run with metadata.json and a poses.csv of sampled body
// poses. Saved runs are explicit exports for plotting and analysis, not
// resumable simulation state.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orrery/internal/engine"
	"github.com/san-kum/orrery/internal/ephem"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Start         time.Time `json:"start"`
	StrideHours   float64   `json:"stride_hours"`
	PlanetScale   float64   `json:"planet_scale"`
	UniverseScale float64   `json:"universe_scale"`
	Bodies        int       `json:"bodies"`
	Samples       int       `json:"samples"`
}

var poseHeader = []string{"jd", "body", "parent", "x", "y", "z", "rotation_y", "scale", "world_x", "world_y", "world_z"}

// Save writes one run. times holds the Julian Date of each sample; frames
// holds the full pose set per sample.
func (s *Store) Save(name string, start time.Time, strideHours float64, set engine.Settings, times []float64, frames [][]engine.BodyPose) (string, error) {
	if len(times) != len(frames) {
		return "", fmt.Errorf("got %d timestamps for %d frames", len(times), len(frames))
	}

	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	bodies := 0
	if len(frames) > 0 {
		bodies = len(frames[0])
	}
	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Start:         start,
		StrideHours:   strideHours,
		PlanetScale:   set.PlanetScale,
		UniverseScale: set.UniverseScale,
		Bodies:        bodies,
		Samples:       len(frames),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "poses.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(poseHeader); err != nil {
		return "", err
	}
	for i, frame := range frames {
		jd := strconv.FormatFloat(times[i], 'f', 8, 64)
		for _, p := range frame {
			row := []string{
				jd,
				p.Name,
				p.Parent,
				formatFloat(p.Position.X),
				formatFloat(p.Position.Y),
				formatFloat(p.Position.Z),
				formatFloat(p.RotationY),
				formatFloat(p.Scale),
				formatFloat(p.World.X),
				formatFloat(p.World.Y),
				formatFloat(p.World.Z),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries extracts one body's sampled world positions from a run.
func (s *Store) LoadSeries(runID, bodyName string) ([]float64, []ephem.Vec3, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "poses.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	times := make([]float64, 0)
	positions := make([]ephem.Vec3, 0)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) != len(poseHeader) || rec[1] != bodyName {
			continue
		}
		jd, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(rec[8], 64)
		y, errY := strconv.ParseFloat(rec[9], 64)
		z, errZ := strconv.ParseFloat(rec[10], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		times = append(times, jd)
		positions = append(positions, ephem.Vec3{X: x, Y: y, Z: z})
	}

	if len(times) == 0 {
		return nil, nil, fmt.Errorf("no samples for body %q in run %s", bodyName, runID)
	}
	return times, positions, nil
}

// ExportCSV streams a run's raw pose table.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "poses.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
