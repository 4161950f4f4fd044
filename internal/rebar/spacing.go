package rebar

import "fmt"

// StandardSpacings lists the preferred bar spacings (mm) in search order.
// The order is a preference, not a strict descending sequence.
var StandardSpacings = []float64{300, 250, 220, 200, 190, 180, 170, 150, 150, 140, 130, 125, 120, 110, 100, 80, 50}

// SpacingLayout is a distributed arrangement of bars per unit width
type SpacingLayout struct {
	Spacing  float64 `json:"spacing"`  // m
	Diameter float64 `json:"diameter"` // m
	Area     float64 `json:"area"`     // m²/m
}

func (l SpacingLayout) String() string {
	return fmt.Sprintf("ø%.0f / %.0f mm", l.Diameter*1000, l.Spacing*1000)
}

// Admissible reports whether spacing s (m) leaves enough clear distance
// for bars of diameter bar with the given cover
func Admissible(s, bar, cover float64) bool {
	return s > bar+cover
}

// SelectSpacingLayout walks StandardSpacings and returns the first
// admissible spacing whose area per metre covers required and lies within
// [minArea, maxArea]. Areas are m²/m, lengths m.
func SelectSpacingLayout(required, minArea, maxArea, bar, cover float64) (SpacingLayout, bool) {
	single := BarArea(bar)

	for _, mm := range StandardSpacings {
		s := mm / 1000
		if !Admissible(s, bar, cover) {
			continue
		}
		area := single / s
		if area >= required && area >= minArea && area <= maxArea {
			return SpacingLayout{Spacing: s, Diameter: bar, Area: area}, true
		}
	}
	return SpacingLayout{}, false
}
