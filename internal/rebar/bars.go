package rebar

import (
	"fmt"
	"math"
)

// MinBarCount is the minimum constructible number of bars in a layer
const MinBarCount = 2

// BarArea returns the cross-sectional area of one bar of diameter d (m → m²)
func BarArea(d float64) float64 {
	return math.Pi * math.Pow(d/2, 2)
}

// BarLayout is a discrete arrangement of equal bars in one layer
type BarLayout struct {
	Count    int     `json:"bar_count"`
	Diameter float64 `json:"diameter"` // m
	Area     float64 `json:"area"`     // m²
}

func (l BarLayout) String() string {
	return fmt.Sprintf("%d x ø%.0f", l.Count, l.Diameter*1000)
}

// MaxBarCount returns the largest number of bars of diameter bar that fit
// in one layer of a section of the given width. The clear spacing between
// bars equals the cover. Each bar takes its diameter plus one spacing; if
// what is left after that is still at least one diameter, the last bar
// (which needs no trailing spacing) fits as well.
func MaxBarCount(bar, stirrup, width, cover float64) int {
	available := width - 2*(cover+stirrup)
	if available <= 0 || bar <= 0 {
		return 0
	}

	pitch := bar + cover
	n := int(math.Floor(available / pitch))
	leftover := available - float64(n)*pitch
	if leftover >= bar {
		n++
	}
	return n
}

// SelectBarLayout finds the smallest bar count whose area covers required
// and lies within [minArea, maxArea]. All values are in metres. It reports
// false when no count between MinBarCount and the geometric maximum
// qualifies; the caller must treat that as a redesign condition.
func SelectBarLayout(required, minArea, maxArea, bar, stirrup, width, cover float64) (BarLayout, bool) {
	maxCount := MaxBarCount(bar, stirrup, width, cover)
	single := BarArea(bar)

	// Ascending scan gives the least material
	for count := MinBarCount; count <= maxCount; count++ {
		area := float64(count) * single
		if area >= required && area >= minArea && area <= maxArea {
			return BarLayout{Count: count, Diameter: bar, Area: area}, true
		}
	}
	return BarLayout{}, false
}
