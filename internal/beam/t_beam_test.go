package beam

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/rebar"
)

func support(moment float64) Params {
	return Params{
		Section:         Support,
		Width:           30,
		Height:          50,
		Cover:           30,
		StirrupDiameter: 8,
		BarDiameter:     16,
		Moment:          moment,
		ConcreteClass:   "C25/30",
		SteelGrade:      "RB500W",
	}
}

func checkFlag(tst *testing.T, res *design.Result, name string, want bool) {
	got, ok := res.Check(name)
	if !ok {
		tst.Errorf("test failed: check %s not recorded\n", name)
		return
	}
	if got != want {
		tst.Errorf("test failed: check %s = %v, want %v\n", name, got, want)
	}
}

func Test_beam01(tst *testing.T) {

	chk.PrintTitle("beam01. support section")

	res, err := Design(support(120))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s := res.State.(*State)

	chk.Float64(tst, "d", 1e-12, s.EffectiveDepth, 0.454)
	chk.Float64(tst, "mu", 1e-9, s.Mu, 0.10867666750761708)
	chk.Float64(tst, "As,req", 1e-9, *res.RequiredArea[0], 5.792424966602739e-4)
	chk.Float64(tst, "As,prov", 1e-12, *res.ProvidedArea[0], 3*rebar.BarArea(0.016))
	chk.IntAssert(*res.ProvidedReinforcement[0].BarCount, 3)
	chk.Strings(tst, "positions", res.Positions, []string{"support"})

	checkFlag(tst, res, design.CheckInput, true)
	checkFlag(tst, res, design.CheckMu, true)
	checkFlag(tst, res, design.CheckLayout, true)
	checkFlag(tst, res, design.CheckCapacity, true)

	if s.Capacity == nil {
		tst.Errorf("test failed: capacity not analysed\n")
		return
	}
	chk.Float64(tst, "MRd", 1e-6, s.Capacity.MomentResistance, 124.07807420420006)
	if s.Capacity.OverReinforced {
		tst.Errorf("test failed: over-reinforced\n")
	}
}

func Test_beam02(tst *testing.T) {

	chk.PrintTitle("beam02. mu above the limit")

	p := support(500)
	p.Width, p.Height = 20, 30
	res, err := Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	checkFlag(tst, res, design.CheckMu, false)
	chk.IntAssert(len(res.Positions), 1)
	if res.RequiredArea[0] != nil || res.ProvidedArea[0] != nil || res.ProvidedReinforcement[0] != nil {
		tst.Errorf("test failed: values computed past the mu limit\n")
	}
}

func Test_beam03(tst *testing.T) {

	chk.PrintTitle("beam03. apparent T")

	p := Params{
		Section:         Span,
		Width:           30,
		Height:          50,
		FlangeWidth:     120,
		FlangeThickness: 12,
		Cover:           30,
		StirrupDiameter: 8,
		BarDiameter:     20,
		Moment:          200,
		ConcreteClass:   "C25/30",
		SteelGrade:      "RB500W",
	}
	res, err := Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s := res.State.(*State)
	if s.RealT {
		tst.Errorf("test failed: designed as a real T\n")
	}
	chk.Float64(tst, "mu", 1e-9, s.Mu, 0.045683556530138086)
	chk.Float64(tst, "As,req", 1e-9, *res.RequiredArea[0], 7.448705058354808e-4)
	chk.IntAssert(*res.ProvidedReinforcement[0].BarCount, 3)
	chk.Float64(tst, "MRd", 1e-6, s.Capacity.MomentResistance, 236.02921927352017)
	checkFlag(tst, res, design.CheckCapacity, true)
}

func Test_beam04(tst *testing.T) {

	chk.PrintTitle("beam04. real T")

	p := Params{
		Section:         Span,
		Width:           30,
		Height:          70,
		FlangeWidth:     80,
		FlangeThickness: 5,
		Cover:           30,
		StirrupDiameter: 10,
		BarDiameter:     32,
		Moment:          600,
		ConcreteClass:   "C25/30",
		SteelGrade:      "RB500W",
	}
	res, err := Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s := res.State.(*State)
	if !s.RealT {
		tst.Errorf("test failed: designed as an apparent T\n")
	}
	chk.Float64(tst, "MRd,f", 1e-9, s.FlangeMoment, 276.3392857142857)
	chk.Float64(tst, "mu2", 1e-9, s.Mu2, 0.1456749996785104)
	chk.Float64(tst, "As,req", 1e-9, *res.RequiredArea[0], 22.324545694766117e-4)
	chk.IntAssert(*res.ProvidedReinforcement[0].BarCount, 3)
	checkFlag(tst, res, design.CheckMu2, true)

	if !s.Capacity.RealT {
		tst.Errorf("test failed: capacity of a real T analysed as a rectangle\n")
	}
	chk.Float64(tst, "MRd", 1e-6, s.Capacity.MomentResistance, 640.9945748362447)
	checkFlag(tst, res, design.CheckCapacity, true)
}

func Test_beam05(tst *testing.T) {

	chk.PrintTitle("beam05. invalid input")

	p := support(120)
	p.Section = "edge"
	res, err := Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	checkFlag(tst, res, design.CheckInput, false)
	chk.IntAssert(len(res.Remarks), 1)
	if res.RequiredArea[0] != nil {
		tst.Errorf("test failed: required area of an invalid input\n")
	}

	p = support(120)
	p.ConcreteClass = "C99/99"
	res, err = Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	checkFlag(tst, res, design.CheckInput, false)

	p = support(120)
	p.Section = Span
	p.FlangeWidth = 20
	p.FlangeThickness = 10
	if err := p.Validate(); err == nil {
		tst.Errorf("test failed: flange narrower than the web accepted\n")
	}
}

func Test_beam06(tst *testing.T) {

	chk.PrintTitle("beam06. no layout")

	// ø16 in a 30 cm web holds at most five bars
	res, err := Design(support(250))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	checkFlag(tst, res, design.CheckMu, true)
	checkFlag(tst, res, design.CheckLayout, false)
	if res.RequiredArea[0] == nil {
		tst.Errorf("test failed: required area missing\n")
	}
	if res.ProvidedArea[0] != nil || res.ProvidedReinforcement[0] != nil {
		tst.Errorf("test failed: layout reported\n")
	}
}
