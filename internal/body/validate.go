package body

import "fmt"

// Validate checks the table once at load time. The engine assumes a valid
// table and does not re-check elements per tick.
func (t *Table) Validate() error {
	if len(t.Bodies) == 0 {
		return fmt.Errorf("body table is empty")
	}
	if err := validateSiblings(t.Bodies); err != nil {
		return err
	}
	for i := range t.Bodies {
		if err := validateBody(&t.Bodies[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateBody(b *Body) error {
	if b.Name == "" {
		return fmt.Errorf("body without a name")
	}
	if b.Radius <= 0 {
		return fmt.Errorf("%s: radius must be positive, got %g", b.Name, b.Radius)
	}
	if b.RotPeriod == 0 {
		return fmt.Errorf("%s: rotation period must be non-zero", b.Name)
	}
	if b.Elements.E < 0 || b.Elements.E >= 1 {
		return fmt.Errorf("%s: eccentricity must be in [0,1), got %g", b.Name, b.Elements.E)
	}
	if b.Elements.A < 0 {
		return fmt.Errorf("%s: semi-major axis must be non-negative, got %g", b.Name, b.Elements.A)
	}
	if b.DistanceFactor < 0 {
		return fmt.Errorf("%s: distance factor must be non-negative, got %g", b.Name, b.DistanceFactor)
	}
	if err := validateSiblings(b.Satellites); err != nil {
		return fmt.Errorf("%s: %w", b.Name, err)
	}
	for i := range b.Satellites {
		if err := validateBody(&b.Satellites[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateSiblings(bodies []Body) error {
	seen := make(map[string]bool, len(bodies))
	for i := range bodies {
		name := bodies[i].Name
		if name == "" {
			continue // reported by validateBody
		}
		if seen[name] {
			return fmt.Errorf("duplicate body name %q", name)
		}
		seen[name] = true
	}
	return nil
}
