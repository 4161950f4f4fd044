package rebar

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bars01(tst *testing.T) {

	chk.PrintTitle("bars01")

	// 30 cm web, 30 mm cover, ø8 stirrups, ø16 bars: 224 mm clear
	chk.IntAssert(MaxBarCount(0.016, 0.008, 0.30, 0.030), 5)

	// no room at all
	chk.IntAssert(MaxBarCount(0.016, 0.008, 0.07, 0.030), 0)
	chk.IntAssert(MaxBarCount(0, 0.008, 0.30, 0.030), 0)

	chk.Float64(tst, "A(ø16)", 1e-12, BarArea(0.016), math.Pi*0.008*0.008)
}

func Test_bars02(tst *testing.T) {

	chk.PrintTitle("bars02")

	l, ok := SelectBarLayout(5.79e-4, 1.84e-4, 60e-4, 0.016, 0.008, 0.30, 0.030)
	if !ok {
		tst.Errorf("test failed: no layout found\n")
		return
	}
	chk.IntAssert(l.Count, 3)
	chk.Float64(tst, "As", 1e-12, l.Area, 3*BarArea(0.016))
	chk.String(tst, l.String(), "3 x ø16")

	// same input, same layout
	again, _ := SelectBarLayout(5.79e-4, 1.84e-4, 60e-4, 0.016, 0.008, 0.30, 0.030)
	chk.IntAssert(again.Count, l.Count)

	// the minimum governs when the required area is small
	l, ok = SelectBarLayout(0, 5e-4, 60e-4, 0.016, 0.008, 0.30, 0.030)
	if !ok {
		tst.Errorf("test failed: no layout found\n")
		return
	}
	chk.IntAssert(l.Count, 3)

	// more than five bars do not fit
	if _, ok := SelectBarLayout(12e-4, 0, 60e-4, 0.016, 0.008, 0.30, 0.030); ok {
		tst.Errorf("test failed: layout beyond the geometric maximum\n")
	}

	// the maximum area excludes every count
	if _, ok := SelectBarLayout(1e-4, 0, 3e-4, 0.016, 0.008, 0.30, 0.030); ok {
		tst.Errorf("test failed: layout above the maximum area\n")
	}
}

func Test_spacing01(tst *testing.T) {

	chk.PrintTitle("spacing01")

	if Admissible(0.030, 0.010, 0.020) {
		tst.Errorf("test failed: 30 mm admitted for ø10 with 20 mm cover\n")
	}
	if !Admissible(0.050, 0.010, 0.020) {
		tst.Errorf("test failed: 50 mm rejected for ø10 with 20 mm cover\n")
	}

	l, ok := SelectSpacingLayout(4.5539e-4, 2.2308e-4, 80e-4, 0.010, 0.020)
	if !ok {
		tst.Errorf("test failed: no spacing found\n")
		return
	}
	chk.Float64(tst, "s", 1e-12, l.Spacing, 0.170)
	chk.Float64(tst, "As", 1e-12, l.Area, BarArea(0.010)/0.170)
	chk.String(tst, l.String(), "ø10 / 170 mm")

	// every admissible spacing is too sparse
	if _, ok := SelectSpacingLayout(50e-4, 0, 80e-4, 0.010, 0.020); ok {
		tst.Errorf("test failed: spacing found for 50 cm²/m of ø10\n")
	}
}

func Test_spacing02(tst *testing.T) {

	chk.PrintTitle("spacing02")

	// large cover rules out the tight spacings; the search still ends at
	// the densest admissible one
	bar, cover := 0.012, 0.100
	l, ok := SelectSpacingLayout(0, 0, 1, bar, cover)
	if !ok {
		tst.Errorf("test failed: no spacing found\n")
		return
	}
	chk.Float64(tst, "s", 1e-12, l.Spacing, 0.300)
	for _, mm := range StandardSpacings {
		s := mm / 1000
		if s <= bar+cover && Admissible(s, bar, cover) {
			tst.Errorf("test failed: %g mm admitted\n", mm)
		}
	}
}
