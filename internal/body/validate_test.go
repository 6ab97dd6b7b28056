package body_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/ephem"
)

func minimalTable() *body.Table {
	return &body.Table{
		Bodies: []body.Body{
			{
				Name: "star", Radius: 1.0, RotPeriod: 600,
				Satellites: []body.Body{
					{Name: "planet", Radius: 0.01, RotPeriod: 24,
						Elements: ephem.Elements{A: 1.0, E: 0.1}},
				},
			},
		},
	}
}

var _ = Describe("Table validation", func() {
	It("accepts the built-in star system", func() {
		Expect(body.Sol().Validate()).To(Succeed())
	})

	It("accepts a central body with a zero semi-major axis", func() {
		Expect(minimalTable().Validate()).To(Succeed())
	})

	It("rejects an empty table", func() {
		t := &body.Table{}
		Expect(t.Validate()).To(MatchError(ContainSubstring("empty")))
	})

	It("rejects a zero rotation period", func() {
		t := minimalTable()
		t.Bodies[0].Satellites[0].RotPeriod = 0
		Expect(t.Validate()).To(MatchError(ContainSubstring("rotation period")))
	})

	It("rejects eccentricity of one or above", func() {
		t := minimalTable()
		t.Bodies[0].Satellites[0].Elements.E = 1.0
		Expect(t.Validate()).To(MatchError(ContainSubstring("eccentricity")))
	})

	It("rejects a negative eccentricity", func() {
		t := minimalTable()
		t.Bodies[0].Satellites[0].Elements.E = -0.1
		Expect(t.Validate()).To(MatchError(ContainSubstring("eccentricity")))
	})

	It("rejects a negative semi-major axis", func() {
		t := minimalTable()
		t.Bodies[0].Satellites[0].Elements.A = -1
		Expect(t.Validate()).To(MatchError(ContainSubstring("semi-major axis")))
	})

	It("rejects a negative distance factor", func() {
		t := minimalTable()
		t.Bodies[0].Satellites[0].DistanceFactor = -2
		Expect(t.Validate()).To(MatchError(ContainSubstring("distance factor")))
	})

	It("rejects duplicate sibling names", func() {
		t := minimalTable()
		sat := t.Bodies[0].Satellites[0]
		t.Bodies[0].Satellites = append(t.Bodies[0].Satellites, sat)
		Expect(t.Validate()).To(MatchError(ContainSubstring("duplicate")))
	})

	It("rejects an unnamed body", func() {
		t := minimalTable()
		t.Bodies[0].Satellites[0].Name = ""
		Expect(t.Validate()).To(MatchError(ContainSubstring("name")))
	})
})

var _ = Describe("Table lookup", func() {
	It("counts bodies recursively", func() {
		Expect(body.Sol().Count()).To(Equal(10))
	})

	It("finds nested satellites", func() {
		moon := body.Sol().Find("moon")
		Expect(moon).NotTo(BeNil())
		Expect(moon.Elements.E).To(BeNumerically("~", 0.0549, 1e-9))
	})

	It("returns nil for unknown names", func() {
		Expect(body.Sol().Find("vulcan")).To(BeNil())
	})
})

var _ = Describe("Load and Save", func() {
	It("round-trips a table through YAML", func() {
		path := filepath.Join(GinkgoT().TempDir(), "bodies.yaml")
		Expect(body.Save(path, body.Sol())).To(Succeed())

		loaded, err := body.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Count()).To(Equal(10))
		Expect(loaded.Find("earth").Elements.L).To(BeNumerically("~", 100.46435, 1e-9))
	})

	It("refuses an invalid table on load", func() {
		path := filepath.Join(GinkgoT().TempDir(), "bad.yaml")
		data := []byte("bodies:\n  - name: rock\n    radius: 1\n    rotation_period: 0\n")
		Expect(os.WriteFile(path, data, 0644)).To(Succeed())

		_, err := body.Load(path)
		Expect(err).To(MatchError(ContainSubstring("rotation period")))
	})
})
