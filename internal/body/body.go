// Package body defines the static celestial body configuration tree: one
// node per simulated object, satellites nested under their parent. The
// table is fixed at startup and validated once at load time; per-tick pose
// state lives in the engine, never here.
package body

import "github.com/san-kum/orrery/internal/ephem"

// DefaultDistanceFactor separates a satellite's orbital-distance scale from
// its parent's visual scale when the table does not set one.
const DefaultDistanceFactor = 10.0

// Body describes one simulated object and its satellites.
type Body struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`

	// RotPeriod is hours per rotation; a negative value spins retrograde.
	// Zero is a configuration error caught by Validate.
	RotPeriod float64 `yaml:"rotation_period"`

	Elements ephem.Elements `yaml:"elements"`

	// DistanceFactor multiplies a satellite's orbital distance independently
	// of the parent's visual scale. Zero means DefaultDistanceFactor.
	DistanceFactor float64 `yaml:"distance_factor,omitempty"`

	Satellites []Body `yaml:"satellites,omitempty"`
}

// Central reports whether the body sits at its parent frame's origin and
// has no orbit of its own.
func (b *Body) Central() bool {
	return b.Elements.A == 0
}

// Table is the full body set for one simulation.
type Table struct {
	Bodies []Body `yaml:"bodies"`
}

// Count returns the number of bodies in the table, satellites included.
func (t *Table) Count() int {
	n := 0
	for i := range t.Bodies {
		n += countBodies(&t.Bodies[i])
	}
	return n
}

func countBodies(b *Body) int {
	n := 1
	for i := range b.Satellites {
		n += countBodies(&b.Satellites[i])
	}
	return n
}

// Find returns the named body, searching depth-first, or nil.
func (t *Table) Find(name string) *Body {
	for i := range t.Bodies {
		if b := findBody(&t.Bodies[i], name); b != nil {
			return b
		}
	}
	return nil
}

func findBody(b *Body, name string) *Body {
	if b.Name == name {
		return b
	}
	for i := range b.Satellites {
		if found := findBody(&b.Satellites[i], name); found != nil {
			return found
		}
	}
	return nil
}
