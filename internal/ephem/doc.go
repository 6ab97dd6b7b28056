// Package ephem provides the closed-form orbital math used by the engine:
// Julian date conversion, Kepler's equation, and the transform from
// perifocal coordinates into the shared ecliptic rendering frame.
//
// Everything here is a pure function of its inputs. Angles in [Elements]
// are degrees; anomalies passed between [SolveKepler] and [OrbitPosition]
// are radians.
package ephem
