package ec2

import (
	"fmt"
	"math"
	"strings"
)

// PN-EN 1992-1-1 material constants (Polish National Annex)

const (
	// Partial factor for concrete (Section 2.4.2.4)
	GammaC = 1.4

	// Coefficient for long term effects on compressive strength (Section 3.1.6)
	AlphaCC = 1.0

	// MPa to kPa
	mpaToKPa = 1000.0
)

// Concrete holds the characteristic values of a concrete class (MPa, GPa)
type Concrete struct {
	Class           string  `json:"concrete_class"`
	Fck             float64 `json:"fck"`      // characteristic cylinder strength (MPa)
	FckCube         float64 `json:"fck_cube"` // characteristic cube strength (MPa)
	Fcm             float64 `json:"fcm"`      // mean compressive strength (MPa)
	Fctm            float64 `json:"fctm"`     // mean tensile strength (MPa)
	Fctk005         float64 `json:"fctk_0.05"`
	Fctk095         float64 `json:"fctk_0.95"`
	Ecm             float64 `json:"ecm"` // elastic modulus (GPa)
	AreaCoefficient float64 `json:"area_coefficient"`
}

// Fcd returns the design compressive strength in kPa
func (c Concrete) Fcd() float64 {
	return AlphaCC * c.Fck / GammaC * mpaToKPa
}

// Fctd returns the design tensile strength in kPa
func (c Concrete) Fctd() float64 {
	return c.Fctk005 / GammaC * mpaToKPa
}

// FctmKPa returns the mean tensile strength in kPa
func (c Concrete) FctmKPa() float64 {
	return c.Fctm * mpaToKPa
}

// Steel holds the strength values of a reinforcing steel grade (MPa)
type Steel struct {
	Grade string  `json:"steel_grade"`
	Fyd   float64 `json:"fyd"` // design yield strength (MPa)
	Fyk   float64 `json:"fyk"` // characteristic yield strength (MPa)
}

// FydKPa returns the design yield strength in kPa
func (s Steel) FydKPa() float64 {
	return s.Fyd * mpaToKPa
}

// FykKPa returns the characteristic yield strength in kPa
func (s Steel) FykKPa() float64 {
	return s.Fyk * mpaToKPa
}

var concreteClasses = []Concrete{
	{"C12/15", 12, 15, 20, 1.6, 1.1, 2.0, 27, 0.0013},
	{"C16/20", 16, 20, 24, 1.9, 1.3, 2.5, 29, 0.0013},
	{"C20/25", 20, 25, 28, 2.2, 1.5, 2.9, 30, 0.0013},
	{"C25/30", 25, 30, 33, 2.6, 1.8, 3.3, 31, 0.00135},
	{"C30/37", 30, 37, 38, 2.9, 2.0, 3.8, 33, 0.0015},
	{"C35/45", 35, 45, 43, 3.2, 2.2, 4.2, 34, 0.00165},
	{"C40/50", 40, 50, 48, 3.5, 2.5, 4.6, 35, 0.0018},
	{"C45/55", 45, 55, 53, 3.8, 2.7, 4.9, 36, 0.00195},
	{"C50/60", 50, 60, 58, 4.1, 2.9, 5.3, 37, 0.0021},
}

// Steel grades per PN-B-03264:2002
var steelGrades = []Steel{
	{"20G2VY", 420, 490},
	{"RB500", 420, 500},
	{"RB500W", 420, 500},
}

// Diameters lists the popular rebar diameters (mm)
var Diameters = []int{6, 8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 30, 32, 35, 38, 40}

// Labels describes the catalog properties for reports
var Labels = map[string]string{
	"exp_class":        "Exposure class",
	"concrete_class":   "Concrete class",
	"max_wc":           "Maximum water/cement ratio",
	"min_cem":          "Minimum cement content [kg/m^3]",
	"remarks":          "Remarks about class",
	"fck":              "Characteristic compressive strength of cylinder sample [MPa]",
	"fck_cube":         "Characteristic compressive strength of cube sample [MPa]",
	"fcm":              "Mean compressive strength of cylinder sample [MPa]",
	"fctm":             "Mean tensile strength [MPa]",
	"fctk_0.05":        "5% fractile tensile strength [MPa]",
	"fctk_0.95":        "95% fractile tensile strength [MPa]",
	"ecm":              "Elastic modulus [GPa]",
	"steel_grade":      "Steel grade",
	"fyd":              "Design yield strength [MPa]",
	"fyk":              "Characteristic yield strength [MPa]",
	"area_coefficient": "Area coefficient",
}

var (
	concreteIndex = map[string]Concrete{}
	steelIndex    = map[string]Steel{}
)

func init() {
	for _, c := range concreteClasses {
		concreteIndex[c.Class] = c
	}
	for _, s := range steelGrades {
		steelIndex[s.Grade] = s
	}
	for _, e := range exposureClasses {
		exposureIndex[e.Class] = e
	}
}

// UnknownMaterialError is returned when a class or grade is not in the catalog
type UnknownMaterialError struct {
	Table string
	ID    string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.ID)
}

// normalizeClass accepts both "C25/30" and "C25_30"
func normalizeClass(id string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(id)), "_", "/")
}

// LookupConcrete finds a concrete class by name
func LookupConcrete(id string) (Concrete, error) {
	c, ok := concreteIndex[normalizeClass(id)]
	if !ok {
		return Concrete{}, &UnknownMaterialError{Table: "concrete class", ID: id}
	}
	return c, nil
}

// LookupSteel finds a steel grade by name
func LookupSteel(id string) (Steel, error) {
	s, ok := steelIndex[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Steel{}, &UnknownMaterialError{Table: "steel grade", ID: id}
	}
	return s, nil
}

// Properties returns the concrete and steel properties for an element.
// The element kind is kept in the signature for per-kind tables; all
// kinds currently share the same catalog.
func Properties(kind ElementKind, concreteID, steelID string) (Concrete, Steel, error) {
	c, err := LookupConcrete(concreteID)
	if err != nil {
		return Concrete{}, Steel{}, fmt.Errorf("%s: %w", kind, err)
	}
	s, err := LookupSteel(steelID)
	if err != nil {
		return Concrete{}, Steel{}, fmt.Errorf("%s: %w", kind, err)
	}
	return c, s, nil
}

// ConcreteClasses returns a copy of the concrete table in strength order
func ConcreteClasses() []Concrete {
	return append([]Concrete(nil), concreteClasses...)
}

// SteelGrades returns a copy of the steel table
func SteelGrades() []Steel {
	return append([]Steel(nil), steelGrades...)
}

// IsStandardDiameter reports whether d (mm) is one of the popular diameters
func IsStandardDiameter(d float64) bool {
	for _, std := range Diameters {
		if math.Abs(d-float64(std)) < 1e-9 {
			return true
		}
	}
	return false
}
