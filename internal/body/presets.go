package body

import "github.com/san-kum/orrery/internal/ephem"

// Sol returns the built-in star system: the Sun, the eight planets and the
// Moon, with J2000 epoch elements. Radii are visual units tuned for the
// renderer, not physical proportions; rotation periods are hours, negative
// for retrograde spin.
func Sol() *Table {
	return &Table{
		Bodies: []Body{
			{
				Name: "sun", Radius: 1.0, RotPeriod: 609.12,
				Elements: ephem.Elements{},
			},
			{
				Name: "mercury", Radius: 0.0049, RotPeriod: 1407.6,
				Elements: ephem.Elements{A: 0.38709893, E: 0.20563069, I: 7.00487, L: 252.25084, W: 77.45645, O: 48.33167},
			},
			{
				Name: "venus", Radius: 0.0121, RotPeriod: -5832.5,
				Elements: ephem.Elements{A: 0.72333199, E: 0.00677323, I: 3.39471, L: 181.97973, W: 131.53298, O: 76.68069},
			},
			{
				Name: "earth", Radius: 0.013, RotPeriod: 23.93,
				Elements: ephem.Elements{A: 1.00000011, E: 0.01671022, I: 0.00005, L: 100.46435, W: 102.94719, O: -11.26064},
				Satellites: []Body{
					{
						Name: "moon", Radius: 0.0035, RotPeriod: 655.7, DistanceFactor: 12.0,
						Elements: ephem.Elements{A: 0.00256955, E: 0.0549, I: 5.145, L: 218.3164, W: 318.15, O: 125.08},
					},
				},
			},
			{
				Name: "mars", Radius: 0.0068, RotPeriod: 24.62,
				Elements: ephem.Elements{A: 1.52366231, E: 0.09341233, I: 1.85061, L: 355.45332, W: 336.04084, O: 49.57854},
			},
			{
				Name: "jupiter", Radius: 0.14, RotPeriod: 9.93,
				Elements: ephem.Elements{A: 5.20336301, E: 0.04839266, I: 1.30530, L: 34.40438, W: 14.75385, O: 100.55615},
			},
			{
				Name: "saturn", Radius: 0.12, RotPeriod: 10.66,
				Elements: ephem.Elements{A: 9.53707032, E: 0.05415060, I: 2.48446, L: 49.94432, W: 92.43194, O: 113.71504},
			},
			{
				Name: "uranus", Radius: 0.051, RotPeriod: -17.24,
				Elements: ephem.Elements{A: 19.19126393, E: 0.04716771, I: 0.76986, L: 313.23218, W: 170.96424, O: 74.22988},
			},
			{
				Name: "neptune", Radius: 0.049, RotPeriod: 16.11,
				Elements: ephem.Elements{A: 30.06896348, E: 0.00858587, I: 1.76917, L: 304.88003, W: 44.97135, O: 131.72169},
			},
		},
	}
}
