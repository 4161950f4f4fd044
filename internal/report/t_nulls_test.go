package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/alexiusacademia/rcalc/internal/beam"
	"github.com/alexiusacademia/rcalc/internal/column"
	"github.com/alexiusacademia/rcalc/internal/diagram"
	"github.com/alexiusacademia/rcalc/internal/ec2"
	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/footing"
	"github.com/alexiusacademia/rcalc/internal/slab"
)

// sweep returns feasible, infeasible, over-capacity and invalid elements of
// every kind
func sweep() []element.Element {
	var list []element.Element
	for _, section := range []beam.Section{beam.Support, beam.Span} {
		for _, w := range []float64{0, 20, 30} {
			for _, h := range []float64{30, 50, 70} {
				for _, m := range []float64{0, 50, 120, 250, 500, 2000} {
					for _, bar := range []float64{12, 32} {
						list = append(list, element.NewBeam(beam.Params{
							Section: section, Width: w, Height: h,
							FlangeWidth: 80, FlangeThickness: 8,
							Cover: 30, StirrupDiameter: 8, BarDiameter: bar, Moment: m,
							ConcreteClass: "C25/30", SteelGrade: "RB500W",
						}))
					}
				}
			}
		}
	}
	for _, bar := range []float64{16, 32} {
		for _, n := range []float64{-10, 0, 500, 3000, 20000} {
			for _, m := range []float64{0, 100, 1000} {
				list = append(list, element.NewColumn(column.Params{
					Width: 30, Height: 40, Cover: 30, StirrupDiameter: 8,
					BarDiameter: bar, AxialForce: n, Moment: m,
					ConcreteClass: "C25/30", SteelGrade: "RB500W",
				}))
			}
		}
	}
	for _, h := range []float64{0, 8, 20} {
		for _, m := range []float64{0, 3, 40, 200} {
			for _, m2 := range []float64{0, 15} {
				list = append(list, element.NewSlab(slab.Params{
					Thickness: h, Cover: 20, BarDiameter: 10,
					Moment: m, SecondaryMoment: m2,
					ConcreteClass: "C25/30", SteelGrade: "RB500W",
				}))
			}
		}
	}
	for _, h := range []float64{25, 50, 90} {
		for _, n := range []float64{100, 1500, 8000} {
			for _, bar := range []float64{8, 12} {
				list = append(list, element.NewFooting(footing.Params{
					Length: 200, Width: 200, Height: h,
					ColumnLength: 40, ColumnWidth: 40,
					Cover: 50, BarDiameter: bar, ColumnBarDiameter: 16,
					AxialForce: n, ConcreteClass: "C25/30", SteelGrade: "RB500W",
				}))
			}
		}
	}
	list = append(list, element.Element{Kind: ec2.Footing})
	return list
}

func Test_nulls01(tst *testing.T) {

	chk.PrintTitle("nulls01. missing layouts downstream")

	out, err := element.CalculateAll(sweep())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	positions := 0
	incomplete := map[ec2.ElementKind]int{}
	var withNulls []element.Output
	for _, o := range out {
		res := o.Results
		positions += len(res.Positions)
		chk.IntAssert(len(res.RequiredArea), len(res.Positions))
		chk.IntAssert(len(res.ProvidedArea), len(res.Positions))
		chk.IntAssert(len(res.ProvidedReinforcement), len(res.Positions))

		hasNull := false
		for i := range res.Positions {
			if res.ProvidedArea[i] == nil || res.ProvidedReinforcement[i] == nil {
				hasNull = true
			}
		}
		if hasNull {
			incomplete[o.Kind]++
			withNulls = append(withNulls, o)
			if Verdict(res) != "NOT ADEQUATE" {
				tst.Errorf("test failed: %s without layout judged %q\n", o.Name(), Verdict(res))
			}
		}

		if _, err := Parameters(o); err != nil {
			tst.Errorf("test failed: parameters of %s: %v\n", o.Name(), err)
		}
		if _, err := json.Marshal(o); err != nil {
			tst.Errorf("test failed: encoding %s: %v\n", o.Name(), err)
		}
		diagram.Render(o)
		diagram.Section(o)
		diagram.Plan(o)
	}
	for _, kind := range []ec2.ElementKind{ec2.Beam, ec2.Column, ec2.Slab, ec2.Footing} {
		if incomplete[kind] == 0 {
			tst.Errorf("test failed: no %s result without a layout\n", kind)
		}
	}

	rows := Rows(out)
	chk.IntAssert(len(rows), positions)

	meta := Meta{Title: "Missing layouts", Author: "J. Doe"}
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, meta, out); err != nil {
		tst.Errorf("test failed: %v\n", err)
	}
	buf.Reset()
	if err := WritePDF(&buf, meta, withNulls[:min(len(withNulls), 12)], PDFOptions{Diagrams: true}); err != nil {
		tst.Errorf("test failed: %v\n", err)
	}
}
