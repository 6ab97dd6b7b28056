package ephem

import "math"

const degToRad = math.Pi / 180.0

// Vec3 is a position in the rendering frame: X and Z span the horizontal
// plane, Y is vertical.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Elements are Keplerian orbital elements at the J2000 epoch. Angles are
// degrees; A is in scale-free orbit-plane units and is multiplied by the
// simulation's distance scale only at tick time.
type Elements struct {
	A float64 `yaml:"a"` // semi-major axis
	E float64 `yaml:"e"` // eccentricity, 0 <= e < 1
	I float64 `yaml:"i"` // inclination
	L float64 `yaml:"l"` // mean longitude at epoch
	W float64 `yaml:"w"` // longitude of periapsis
	O float64 `yaml:"o"` // longitude of ascending node
}

// OrbitPosition locates a body on its ellipse from the eccentric anomaly E
// (radians) and maps it into the rendering frame.
//
// The perifocal coordinates X = a(cosE - e), Y = a·sqrt(1-e²)·sinE are
// rotated by the argument of periapsis w-o, the inclination, and the
// ascending node into the ecliptic frame. The ecliptic out-of-plane
// component becomes the vertical axis, so orbits lie flat by default and
// inclination tilts them out of the horizontal plane.
func OrbitPosition(E float64, el Elements) Vec3 {
	px := el.A * (math.Cos(E) - el.E)
	py := el.A * math.Sqrt(1-el.E*el.E) * math.Sin(E)

	w := (el.W - el.O) * degToRad
	i := el.I * degToRad
	o := el.O * degToRad

	cw, sw := math.Cos(w), math.Sin(w)
	ci, si := math.Cos(i), math.Sin(i)
	co, so := math.Cos(o), math.Sin(o)

	x := (cw*co-sw*so*ci)*px - (sw*co+cw*so*ci)*py
	y := (cw*so+sw*co*ci)*px - (sw*so-cw*co*ci)*py
	z := sw*si*px + cw*si*py

	return Vec3{X: y, Y: z, Z: -x}
}
