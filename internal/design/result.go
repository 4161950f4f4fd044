// Package design holds the result record shared by the section design
// procedures.
package design

import (
	"fmt"

	"github.com/alexiusacademia/rcalc/internal/rebar"
)

// Names of the sub-checks recorded in Result.Checks
const (
	CheckInput       = "input_valid"
	CheckMu          = "mu_within_limit"
	CheckMu2         = "mu2_within_limit"
	CheckLayout      = "layout_found"
	CheckHeight      = "height_sufficient"
	CheckPunchingMax = "punching_max_satisfied"
	CheckPunching    = "punching_satisfied"
	CheckMaxSpacing  = "spacing_within_limit"
	CheckCapacity    = "capacity_sufficient"
)

// Reinforcement is a provided layout: either a bar count or a spacing
type Reinforcement struct {
	BarCount *int     `json:"bar_count,omitempty"`
	Spacing  *float64 `json:"spacing,omitempty"` // m
	Diameter float64  `json:"diameter"`          // m
	Text     string   `json:"text"`
}

// FromBars converts a bar layout
func FromBars(l rebar.BarLayout) *Reinforcement {
	n := l.Count
	return &Reinforcement{BarCount: &n, Diameter: l.Diameter, Text: l.String()}
}

// FromSpacing converts a spacing layout
func FromSpacing(l rebar.SpacingLayout) *Reinforcement {
	s := l.Spacing
	return &Reinforcement{Spacing: &s, Diameter: l.Diameter, Text: l.String()}
}

// Check is a named pass/fail flag
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Result is the outcome of one calculation call. Each reinforcement
// position (support, face, direction) has one entry in the area and
// layout slices; nil entries mean "not computed" or "no layout found".
type Result struct {
	Positions             []string         `json:"positions"`
	RequiredArea          []*float64       `json:"required_area"` // m²
	ProvidedArea          []*float64       `json:"provided_area"` // m²
	ProvidedReinforcement []*Reinforcement `json:"provided_reinforcement"`
	Remarks               []string         `json:"remarks"`
	Checks                []Check          `json:"checks"`

	// State is the typed intermediate record of the procedure
	State any `json:"-"`
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// AddPosition appends a reinforcement position. Any of the values may be nil.
func (r *Result) AddPosition(label string, required, provided *float64, layout *Reinforcement) {
	r.Positions = append(r.Positions, label)
	r.RequiredArea = append(r.RequiredArea, required)
	r.ProvidedArea = append(r.ProvidedArea, provided)
	r.ProvidedReinforcement = append(r.ProvidedReinforcement, layout)
}

// Remark appends a formatted remark
func (r *Result) Remark(format string, args ...any) {
	r.Remarks = append(r.Remarks, fmt.Sprintf(format, args...))
}

// SetCheck records a flag, replacing an earlier value with the same name
func (r *Result) SetCheck(name string, passed bool) {
	for i := range r.Checks {
		if r.Checks[i].Name == name {
			r.Checks[i].Passed = passed
			return
		}
	}
	r.Checks = append(r.Checks, Check{Name: name, Passed: passed})
}

// Check returns the flag value and whether it was recorded
func (r *Result) Check(name string) (passed, ok bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c.Passed, true
		}
	}
	return false, false
}

// Invalid builds the result of an input that failed validation
func Invalid(positions []string, err error) Result {
	var r Result
	for _, p := range positions {
		r.AddPosition(p, nil, nil, nil)
	}
	r.Remark("Invalid input: %v", err)
	r.SetCheck(CheckInput, false)
	return r
}
