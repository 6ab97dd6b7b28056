package ephem

import (
	"math"
	"testing"
)

func TestSolveKeplerResidual(t *testing.T) {
	for e := 0.0; e <= 0.9; e += 0.1 {
		for M := 0.0; M < 2*math.Pi; M += 0.1 {
			E := SolveKepler(M, e)
			residual := math.Abs(E - e*math.Sin(E) - M)
			if residual > 1e-5 {
				t.Fatalf("residual %.2e for e=%.1f M=%.2f", residual, e, M)
			}
		}
	}
}

func TestSolveKeplerCircular(t *testing.T) {
	// With e=0 the equation is E = M.
	for _, M := range []float64{0, 0.5, math.Pi, 5.0, -0.25} {
		if E := SolveKepler(M, 0); E != M {
			t.Errorf("e=0: got E=%f, expected %f", E, M)
		}
	}
}

func TestSolveKeplerNegativeAnomaly(t *testing.T) {
	M := -0.0433340 // J2000 Earth-like fixture, radians
	E := SolveKepler(M, 0.0167)
	if math.Abs(E-(-0.0440697)) > 1e-6 {
		t.Errorf("got E=%.7f, expected -0.0440697", E)
	}
}

func TestMeanMotion(t *testing.T) {
	n := MeanMotion(1.0)
	if math.Abs(n-0.9856076686) > 1e-12 {
		t.Errorf("mean motion at a=1: got %.10f", n)
	}

	// Kepler's third law: period scales with a^1.5.
	p1 := PeriodDays(1.0)
	p4 := PeriodDays(4.0)
	if math.Abs(p4/p1-8.0) > 1e-9 {
		t.Errorf("period ratio for a=4 vs a=1: got %f, expected 8", p4/p1)
	}
}

func TestMeanAnomalyAtEpoch(t *testing.T) {
	el := Elements{A: 1.0, E: 0.0167, I: 0.00005, L: 100.46435, W: 102.94719}
	M := MeanAnomaly(el, J2000)
	if math.Abs(M-(-2.48284)) > 1e-9 {
		t.Errorf("got M=%.5f, expected -2.48284", M)
	}
}

func TestMeanAnomalyOnePeriod(t *testing.T) {
	el := Elements{A: 1.523662, E: 0.093412, L: 355.45332, W: 336.04084}
	jd := J2000 + 42.0

	m0 := MeanAnomaly(el, jd)
	m1 := MeanAnomaly(el, jd+PeriodDays(el.A))

	diff := math.Mod(m1-m0, 360.0)
	if diff > 180 {
		diff -= 360
	}
	if math.Abs(diff) > 1e-3 {
		t.Errorf("mean anomaly drift over one period: %.6f deg", diff)
	}
}
