package ephem

import "math"

const (
	keplerTolerance = 1e-6
	keplerMaxIters  = 100
)

// SolveKepler solves Kepler's equation E - e·sin(E) = M for the eccentric
// anomaly E, using Newton-Raphson iteration seeded with E0 = M. M is in
// radians, 0 <= e < 1.
//
// The iteration cap bounds per-body per-tick cost. Hitting it is not an
// error: the last estimate is returned, accepting residual error for
// eccentricities approaching 1.
func SolveKepler(M, e float64) float64 {
	E := M
	for i := 0; i < keplerMaxIters; i++ {
		delta := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return E
}

// MeanMotion returns the mean motion in degrees per day for a semi-major
// axis in orbit-plane units. The constant assumes a one-solar-mass central
// body for every orbit, satellites included; the simulation keeps that
// simplification deliberately.
func MeanMotion(a float64) float64 {
	return 0.9856076686 / math.Pow(a, 1.5)
}

// MeanAnomaly propagates epoch elements to the given Julian Date and
// returns the mean anomaly in degrees (unnormalized).
func MeanAnomaly(el Elements, jd float64) float64 {
	lnow := el.L + MeanMotion(el.A)*(jd-J2000)
	return lnow - el.W
}

// PeriodDays returns the orbital period in days for a semi-major axis in
// orbit-plane units.
func PeriodDays(a float64) float64 {
	return 360.0 / MeanMotion(a)
}
