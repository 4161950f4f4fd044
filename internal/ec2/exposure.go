package ec2

import (
	"fmt"
	"math"
	"strings"
)

// Exposure describes an exposure class per PN-EN 1992-1-1:2008/NA:2010.
// Covers holds cmin,dur (mm) for structural classes S1..S6; it is nil
// for classes without a tabulated durability cover (XF, XA).
type Exposure struct {
	Class          string  `json:"exp_class"`
	MinConcrete    string  `json:"concrete_class"` // minimum concrete class
	MaxWC          float64 `json:"max_wc"`         // maximum water/cement ratio, 0 = not limited
	MinCement      float64 `json:"min_cem"`        // minimum cement content (kg/m³), 0 = not limited
	Description    string  `json:"remarks"`
	Covers         []int   `json:"covers,omitempty"`
	ReductionClass string  `json:"-"` // strength class allowing one structural class less
}

var exposureClasses = []Exposure{
	{"X0", "C12/15", 0, 0, "No corrosion risk", []int{10, 10, 10, 10, 15, 20}, "C30/37"},
	{"XC1", "C20/25", 0.65, 260, "Corrosion due to carbonation hazard", []int{10, 10, 10, 15, 20, 25}, "C30/37"},
	{"XC2", "C25/30", 0.6, 280, "Corrosion due to carbonation hazard", []int{10, 15, 20, 25, 30, 35}, "C35/45"},
	{"XC3", "C30/37", 0.55, 280, "Corrosion due to carbonation hazard", []int{10, 15, 20, 25, 30, 35}, "C35/45"},
	{"XC4", "C30/37", 0.5, 300, "Corrosion due to carbonation hazard", []int{15, 20, 25, 30, 35, 40}, "C40/50"},
	{"XD1", "C30/37", 0.55, 300, "Corrosion due to chlorides hazard", []int{20, 25, 30, 35, 40, 45}, "C40/50"},
	{"XD2", "C30/37", 0.55, 300, "Corrosion due to chlorides hazard", []int{25, 30, 35, 40, 45, 50}, "C40/50"},
	{"XD3", "C35/45", 0.45, 320, "Corrosion due to chlorides hazard", []int{30, 35, 40, 45, 50, 55}, "C45/55"},
	{"XS1", "C30/37", 0.5, 300, "Corrosion due to sea water chlorides hazard", []int{20, 25, 30, 35, 40, 45}, "C40/50"},
	{"XS2", "C35/45", 0.45, 320, "Corrosion due to sea water chlorides hazard", []int{25, 30, 35, 40, 45, 50}, "C40/50"},
	{"XS3", "C35/45", 0.45, 340, "Corrosion due to sea water chlorides hazard", []int{30, 35, 40, 45, 50, 55}, "C45/55"},
	{"XF1", "C30/37", 0.55, 300, "Freeze and thaw hazard", nil, ""},
	{"XF2", "C25/30", 0.55, 300, "Freeze and thaw hazard", nil, ""},
	{"XF3", "C30/37", 0.5, 320, "Freeze and thaw hazard", nil, ""},
	{"XF4", "C30/37", 0.45, 340, "Freeze and thaw hazard", nil, ""},
	{"XA1", "C30/37", 0.55, 300, "Chemical hazard", nil, ""},
	{"XA2", "C30/37", 0.5, 320, "Chemical hazard", nil, ""},
	{"XA3", "C35/45", 0.45, 360, "Chemical hazard", nil, ""},
}

var exposureIndex = map[string]Exposure{}

const (
	// Allowance in design for deviation (Section 4.4.1.3), m
	ExecutionDeviation = 0.010

	// Absolute minimum cover (Section 4.4.1.2), m
	absoluteMinCover = 0.010

	// Nominal cover for concrete cast on prepared ground (Section 4.4.1.3(4)), m
	preparedGroundCover = 0.040

	// Recommended structural class for a 50 year working life
	baseStructuralClass = 4
)

// LookupExposure finds an exposure class by name
func LookupExposure(id string) (Exposure, error) {
	e, ok := exposureIndex[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Exposure{}, &UnknownMaterialError{Table: "exposure class", ID: id}
	}
	return e, nil
}

// ExposureClasses returns a copy of the exposure table
func ExposureClasses() []Exposure {
	return append([]Exposure(nil), exposureClasses...)
}

// strongerOrEqual reports whether concrete class a is at least class b
func strongerOrEqual(a Concrete, b string) bool {
	other, ok := concreteIndex[b]
	if !ok {
		return false
	}
	return a.Fck >= other.Fck
}

// CoverResult holds the nominal cover derivation (m)
type CoverResult struct {
	StructuralClass int     `json:"structural_class"`
	MinDurability   float64 `json:"c_min_dur"`
	MinBond         float64 `json:"c_min_b"`
	Min             float64 `json:"c_min"`
	Nominal         float64 `json:"c_nom"`
}

// NominalCover derives the recommended nominal cover for an element.
// barDiameter and declared are in metres. The remarks explain every
// adjustment and any disagreement with the declared cover.
func NominalCover(exposureID string, concrete Concrete, kind ElementKind, barDiameter, declared float64) (CoverResult, []string, error) {
	exp, err := LookupExposure(exposureID)
	if err != nil {
		return CoverResult{}, nil, err
	}

	var remarks []string
	res := CoverResult{StructuralClass: baseStructuralClass}

	if !strongerOrEqual(concrete, exp.MinConcrete) {
		remarks = append(remarks, fmt.Sprintf(
			"Concrete class %s is below the minimum class %s for exposure %s",
			concrete.Class, exp.MinConcrete, exp.Class))
	}

	// Table 4.3N modifications
	if kind == Slab {
		res.StructuralClass--
	}
	if exp.ReductionClass != "" && strongerOrEqual(concrete, exp.ReductionClass) {
		res.StructuralClass--
	}
	if res.StructuralClass < 1 {
		res.StructuralClass = 1
	}

	if exp.Covers != nil {
		res.MinDurability = float64(exp.Covers[res.StructuralClass-1]) / 1000
	} else {
		remarks = append(remarks, fmt.Sprintf(
			"Exposure class %s has no tabulated durability cover, bond requirement governs", exp.Class))
	}

	res.MinBond = barDiameter
	res.Min = math.Max(math.Max(res.MinBond, res.MinDurability), absoluteMinCover)
	res.Nominal = res.Min + ExecutionDeviation

	if kind == Footing && res.Nominal < preparedGroundCover {
		res.Nominal = preparedGroundCover
		remarks = append(remarks, "Footing cast on prepared ground, nominal cover raised to 40 mm")
	}

	if declared > 0 && math.Abs(declared-res.Nominal) > 1e-6 {
		remarks = append(remarks, fmt.Sprintf(
			"Declared cover %.0f mm differs from recommended nominal cover %.0f mm",
			declared*1000, res.Nominal*1000))
	}

	return res, remarks, nil
}
