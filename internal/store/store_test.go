package store

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/engine"
	"github.com/san-kum/orrery/internal/ephem"
)

func sampleRun(t *testing.T, s *Store) string {
	t.Helper()

	e := engine.New(body.Sol())
	set := engine.DefaultSettings()
	start := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	times := make([]float64, 0, 4)
	frames := make([][]engine.BodyPose, 0, 4)
	for i := 0; i < 4; i++ {
		at := start.Add(time.Duration(i) * 6 * time.Hour)
		times = append(times, ephem.ToJulianDate(at))
		frames = append(frames, e.Tick(at, set))
	}

	runID, err := s.Save("sol", start, 6, set, times, frames)
	if err != nil {
		t.Fatal(err)
	}
	return runID
}

func TestSaveListLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID := sampleRun(t, s)

	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("list: %+v", runs)
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Bodies != 10 || meta.Samples != 4 {
		t.Errorf("bodies=%d samples=%d", meta.Bodies, meta.Samples)
	}
	if meta.StrideHours != 6 {
		t.Errorf("stride %f", meta.StrideHours)
	}
}

func TestLoadSeries(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	runID := sampleRun(t, s)

	times, positions, err := s.LoadSeries(runID, "earth")
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 4 || len(positions) != 4 {
		t.Fatalf("got %d/%d samples", len(times), len(positions))
	}
	if math.Abs(times[0]-ephem.J2000) > 1e-6 {
		t.Errorf("first sample jd %.6f", times[0])
	}

	// Earth sits at roughly one orbit-plane unit, times the universe scale.
	r := positions[0].Norm()
	if r < 15 || r > 25 {
		t.Errorf("earth distance %.3f out of range for universe scale 20", r)
	}

	if _, _, err := s.LoadSeries(runID, "vulcan"); err == nil {
		t.Error("expected error for unknown body")
	}
}

func TestExportCSV(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	runID := sampleRun(t, s)

	var buf bytes.Buffer
	if err := s.ExportCSV(runID, &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if want := 1 + 4*10; len(lines) != want {
		t.Errorf("got %d lines, expected %d", len(lines), want)
	}
	if !strings.HasPrefix(lines[0], "jd,body,parent,") {
		t.Errorf("header: %s", lines[0])
	}
}
