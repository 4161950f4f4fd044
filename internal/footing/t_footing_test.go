package footing

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/rcalc/internal/design"
)

func pad(height float64) Params {
	return Params{
		Length:            200,
		Width:             200,
		Height:            height,
		ColumnLength:      40,
		ColumnWidth:       40,
		Cover:             50,
		BarDiameter:       12,
		ColumnBarDiameter: 16,
		AxialForce:        1500,
		ConcreteClass:     "C25/30",
		SteelGrade:        "RB500W",
	}
}

func Test_footing01(tst *testing.T) {

	chk.PrintTitle("footing01. mesh and punching")

	res, err := Design(pad(50))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s := res.State.(*State)

	chk.Float64(tst, "lbd", 1e-12, s.Anchorage, 0.35)
	chk.Float64(tst, "vRd,max", 1e-9, s.VRdMax, 3857.142857142858)
	chk.Float64(tst, "h,min", 1e-9, s.HMin, 0.3050555555555555)
	chk.Float64(tst, "h,cover", 1e-9, s.HCover, 0.424)
	if !s.HeightCorrect {
		tst.Errorf("test failed: height rejected\n")
		return
	}

	chk.Strings(tst, "directions", res.Positions, []string{DirectionX, DirectionY})
	chk.Float64(tst, "Mx", 1e-9, s.X.Moment, 138.675)
	chk.Float64(tst, "Asx", 1e-9, *res.RequiredArea[0], 16.52545402545403e-4)
	chk.Float64(tst, "Asy", 1e-9, *res.RequiredArea[1], 16.984494415049976e-4)
	chk.Float64(tst, "sx", 1e-12, *res.ProvidedReinforcement[0].Spacing, 0.130)
	chk.Float64(tst, "sy", 1e-12, *res.ProvidedReinforcement[1].Spacing, 0.130)

	p := s.Punching
	if p == nil {
		tst.Errorf("test failed: punching not verified\n")
		return
	}
	chk.Float64(tst, "vEd,0", 1e-6, p.VEd0, 2140.4109589041095)
	chk.Float64(tst, "a", 1e-9, p.A, 0.595739)
	chk.Float64(tst, "vEd,red", 1e-6, p.VEdRed, 283.914694796322)
	chk.Float64(tst, "vRd", 1e-6, p.VRd, 558.2067171649066)

	for _, name := range []string{design.CheckHeight, design.CheckLayout, design.CheckPunchingMax, design.CheckPunching} {
		if passed, _ := res.Check(name); !passed {
			tst.Errorf("test failed: check %s failed\n", name)
		}
	}
}

func Test_footing02(tst *testing.T) {

	chk.PrintTitle("footing02. height too small")

	res, err := Design(pad(25))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if passed, _ := res.Check(design.CheckHeight); passed {
		tst.Errorf("test failed: height accepted\n")
	}
	if len(res.Remarks) == 0 || !strings.HasPrefix(res.Remarks[len(res.Remarks)-1], RemarkIncorrectHeight) {
		tst.Errorf("test failed: remarks = %q\n", res.Remarks)
	}
	chk.IntAssert(len(res.Positions), 2)
	for i := range res.Positions {
		if res.RequiredArea[i] != nil || res.ProvidedArea[i] != nil || res.ProvidedReinforcement[i] != nil {
			tst.Errorf("test failed: %s computed for an incorrect height\n", res.Positions[i])
		}
	}
	if res.State.(*State).Punching != nil {
		tst.Errorf("test failed: punching verified for an incorrect height\n")
	}
}

func Test_footing03(tst *testing.T) {

	chk.PrintTitle("footing03. control perimeter curve")

	// continuous at the breakpoints
	for _, x := range []float64{0.5, 1.0} {
		left := ControlCoefficient(x)
		right := ControlCoefficient(x + 1e-9)
		chk.Float64(tst, "k", 1e-7, right, left)
	}
	chk.Float64(tst, "k(0)", 1e-15, ControlCoefficient(0), 0)
	chk.Float64(tst, "k(0.5)", 1e-12, ControlCoefficient(0.5), 0.8)
	chk.Float64(tst, "k(1)", 1e-12, ControlCoefficient(1), 1.4)
	chk.Float64(tst, "k(2)", 1e-12, ControlCoefficient(2), 2.25)

	// clamped outside the chart
	chk.Float64(tst, "k(5)", 1e-15, ControlCoefficient(5), ControlCoefficient(2))
	chk.Float64(tst, "k(-1)", 1e-15, ControlCoefficient(-1), 0)
}

func Test_footing04(tst *testing.T) {

	chk.PrintTitle("footing04. invalid input")

	p := pad(50)
	p.ColumnLength = 250
	res, err := Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if passed, _ := res.Check(design.CheckInput); passed {
		tst.Errorf("test failed: column longer than the footing accepted\n")
	}
	chk.IntAssert(len(res.Positions), 2)
}

func Test_footing05(tst *testing.T) {

	chk.PrintTitle("footing05. rectangular mesh totals")

	p := pad(50)
	p.Length = 300
	res, err := Design(p)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s := res.State.(*State)
	if passed, _ := res.Check(design.CheckLayout); !passed {
		tst.Errorf("test failed: mesh not found\n")
		return
	}

	// x bars span the length and are spread over the width
	chk.Float64(tst, "x distribution", 1e-15, s.X.Distribution, 2.0)
	chk.Float64(tst, "y distribution", 1e-15, s.Y.Distribution, 3.0)
	chk.Float64(tst, "sx", 1e-12, *res.ProvidedReinforcement[0].Spacing, 0.080)
	chk.Float64(tst, "sy", 1e-12, *res.ProvidedReinforcement[1].Spacing, 0.190)
	chk.Float64(tst, "Asx", 1e-9, *res.RequiredArea[0], 13.775680442347112e-4*2.0)
	chk.Float64(tst, "Asx,prov", 1e-9, *res.ProvidedArea[0], s.X.ProvidedArea*2.0)
	chk.Float64(tst, "Asy,prov", 1e-9, *res.ProvidedArea[1], s.Y.ProvidedArea*3.0)
}
