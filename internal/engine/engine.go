// Package engine propagates a body table through time. Each tick is a full
// stateless recomputation: given a simulated timestamp and the visual scale
// settings, it emits a pose per body, walking the hierarchy depth-first so
// a satellite sees its parent's just-resolved scale and position.
package engine

import (
	"math"
	"time"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/ephem"
)

// Settings are the user-adjustable visual scale factors, snapshotted once
// per tick. Body size and orbital distance scale independently so bodies
// stay visible at navigable distances.
type Settings struct {
	PlanetScale   float64 // multiplies body radius
	UniverseScale float64 // multiplies orbital distance
}

func DefaultSettings() Settings {
	return Settings{PlanetScale: 5.0, UniverseScale: 20.0}
}

// Pose is one body's transform relative to its parent frame, consumed by
// the rendering side as an opaque transform.
type Pose struct {
	Position  ephem.Vec3
	RotationY float64 // radians about the local vertical axis
	Scale     float64
}

// BodyPose pairs a pose with the body it belongs to. World is the derived
// flat-space position (parent world position plus the local position scaled
// by the parent's world scale) for consumers that do not nest transforms.
type BodyPose struct {
	Name   string
	Parent string // empty for top-level bodies
	Pose
	World ephem.Vec3
}

// Engine propagates a fixed, pre-validated body table.
type Engine struct {
	table *body.Table
}

func New(table *body.Table) *Engine {
	return &Engine{table: table}
}

func (e *Engine) Table() *body.Table { return e.table }

// frame carries the parent context down the recursion, so a body's pose
// never depends on mutable shared state or on traversal side effects.
type frame struct {
	name       string
	world      ephem.Vec3
	worldScale float64
	scale      float64 // parent's resolved visual scale
	satellite  bool
}

// Tick computes a pose for every body at the simulated timestamp.
// Traversal is configuration order, depth-first, so output order is
// deterministic.
func (e *Engine) Tick(at time.Time, s Settings) []BodyPose {
	jd := ephem.ToJulianDate(at)
	hours := ephem.ElapsedHours(at)

	out := make([]BodyPose, 0, e.table.Count())
	root := frame{worldScale: 1.0}
	for i := range e.table.Bodies {
		out = e.walk(out, &e.table.Bodies[i], jd, hours, s, root)
	}
	return out
}

func (e *Engine) walk(out []BodyPose, b *body.Body, jd, hours float64, s Settings, parent frame) []BodyPose {
	p := pose(b, jd, hours, s, parent)
	world := parent.world.Add(p.Position.Scale(parent.worldScale))

	out = append(out, BodyPose{Name: b.Name, Parent: parent.name, Pose: p, World: world})

	child := frame{
		name:       b.Name,
		world:      world,
		worldScale: p.Scale * parent.worldScale,
		scale:      p.Scale,
		satellite:  true,
	}
	for i := range b.Satellites {
		out = e.walk(out, &b.Satellites[i], jd, hours, s, child)
	}
	return out
}

// pose resolves one body's transform for the tick.
func pose(b *body.Body, jd, hours float64, s Settings, parent frame) Pose {
	var p Pose

	p.Scale = b.Radius * s.PlanetScale
	if parent.satellite {
		// Cancel the parent mesh's own scale so the satellite's apparent
		// size does not track the parent's configured visual scale.
		p.Scale /= parent.scale
	}

	p.RotationY = hours / b.RotPeriod * 2 * math.Pi

	if b.Central() {
		// The central body stays at its parent frame's origin.
		return p
	}

	m := ephem.MeanAnomaly(b.Elements, jd)
	E := ephem.SolveKepler(m*math.Pi/180, b.Elements.E)
	pos := ephem.OrbitPosition(E, b.Elements).Scale(s.UniverseScale)

	if parent.satellite {
		df := b.DistanceFactor
		if df == 0 {
			df = body.DefaultDistanceFactor
		}
		// The distance factor keeps the orbital radius legible while the
		// division cancels the parent scale the renderer will reapply.
		pos = pos.Scale(df / parent.scale)
	}
	p.Position = pos
	return p
}

// OrbitPath samples one revolution of a body's orbit in its parent frame,
// for drawing orbit lines. Central bodies have no orbit and return nil.
// parentScale is the parent's resolved visual scale, 1 for top-level bodies.
func OrbitPath(b *body.Body, s Settings, parentScale float64, satellite bool, steps int) []ephem.Vec3 {
	if b.Central() || steps < 2 {
		return nil
	}
	factor := s.UniverseScale
	if satellite {
		df := b.DistanceFactor
		if df == 0 {
			df = body.DefaultDistanceFactor
		}
		factor *= df / parentScale
	}
	path := make([]ephem.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		M := float64(i) / float64(steps) * 2 * math.Pi
		E := ephem.SolveKepler(M, b.Elements.E)
		path = append(path, ephem.OrbitPosition(E, b.Elements).Scale(factor))
	}
	return path
}
