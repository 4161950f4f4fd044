package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/rcalc/internal/beam"
	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/footing"
)

func calculate(tst *testing.T, e element.Element) element.Output {
	o, err := element.Calculate(e)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	return o
}

func Test_section01(tst *testing.T) {

	chk.PrintTitle("section01. support beam")

	o := calculate(tst, element.NewBeam(beam.Params{
		Section: beam.Support, Width: 30, Height: 50,
		Cover: 30, StirrupDiameter: 8, BarDiameter: 16, Moment: 120,
		ConcreteClass: "C25/30", SteelGrade: "RB500W",
	}))
	data, ok := Section(o)
	if !ok {
		tst.Errorf("test failed: no section for a beam\n")
		return
	}
	if !data.CompressionBottom || data.IsT() {
		tst.Errorf("test failed: support section drawn as %+v\n", data)
	}
	chk.Float64(tst, "b", 1e-9, data.Width, 300)
	chk.IntAssert(len(data.Rows), 1)
	chk.IntAssert(data.Rows[0].Count, 3)
	chk.Float64(tst, "y", 1e-9, data.Rows[0].Y, 454)

	text := Render(o)
	if !strings.Contains(text, "3 x ø16") || !strings.Contains(text, "░") {
		tst.Errorf("test failed: diagram\n%s\n", text)
	}
	if _, ok := Plan(o); ok {
		tst.Errorf("test failed: plan of a beam\n")
	}
}

func Test_section02(tst *testing.T) {

	chk.PrintTitle("section02. T outline")

	d := SectionDiagramData{Width: 300, Height: 500, FlangeWidth: 1200, FlangeThickness: 120, StressBlockDepth: 80}
	if !d.IsT() {
		tst.Errorf("test failed: not a T\n")
		return
	}
	chk.IntAssert(len(d.Outline()), 8)

	lo, hi := widthAtY(d.Outline(), 450)
	chk.Float64(tst, "flange lo", 1e-9, lo, -600)
	chk.Float64(tst, "flange hi", 1e-9, hi, 600)
	lo, hi = widthAtY(d.Outline(), 100)
	chk.Float64(tst, "web lo", 1e-9, lo, -150)
	chk.Float64(tst, "web hi", 1e-9, hi, 150)

	// compression block inside the flange
	zone := d.compressionZone()
	for _, p := range zone {
		if p.Y < 420-1e-9 {
			tst.Errorf("test failed: block point below the block edge: %v\n", p)
		}
	}

	pts := d.rowPositions(BarRow{Y: 50, Count: 3, Diameter: 20})
	chk.IntAssert(len(pts), 3)
	chk.Float64(tst, "x0", 1e-9, pts[0].X, -100)
	chk.Float64(tst, "x2", 1e-9, pts[2].X, 100)

	text := DrawASCIISectionDiagram(d)
	if !strings.Contains(text, "b_eff = 1200 mm") {
		tst.Errorf("test failed: diagram\n%s\n", text)
	}
	chk.String(tst, DrawASCIISectionDiagram(SectionDiagramData{}), "")
}

func Test_plan01(tst *testing.T) {

	chk.PrintTitle("plan01")

	o := calculate(tst, element.NewFooting(footing.Params{
		Length: 200, Width: 200, Height: 50, ColumnLength: 40, ColumnWidth: 40,
		Cover: 50, BarDiameter: 12, ColumnBarDiameter: 16, AxialForce: 1500,
		ConcreteClass: "C25/30", SteelGrade: "RB500W",
	}))
	data, ok := Plan(o)
	if !ok {
		tst.Errorf("test failed: no plan for a footing\n")
		return
	}
	chk.Float64(tst, "sx", 1e-9, data.SpacingX, 130)
	chk.Float64(tst, "a", 1e-6, data.ControlDistance, 595.739)
	if _, ok := Section(o); ok {
		tst.Errorf("test failed: section of a footing\n")
	}

	text := Render(o)
	if !strings.Contains(text, "ø12 / 130 mm") || !strings.Contains(text, "█") {
		tst.Errorf("test failed: plan\n%s\n", text)
	}

	p, err := PlanPlot(data)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	var buf bytes.Buffer
	if err := WritePNG(p, &buf, 3*vg.Inch, 3*vg.Inch); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		tst.Errorf("test failed: not a PNG image\n")
	}
}

func Test_export01(tst *testing.T) {

	chk.PrintTitle("export01")

	o := calculate(tst, element.NewBeam(beam.Params{
		Section: beam.Span, Width: 30, Height: 50, FlangeWidth: 120, FlangeThickness: 12,
		Cover: 30, StirrupDiameter: 8, BarDiameter: 20, Moment: 200,
		ConcreteClass: "C25/30", SteelGrade: "RB500W",
	}))
	dir := tst.TempDir()
	if err := Export(o, filepath.Join(dir, "out", "b1")); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "b1.png")); err != nil {
		tst.Errorf("test failed: %v\n", err)
	}

	name, format := formatOf("plan.SVG")
	chk.StrAssert(name, "plan.SVG")
	chk.StrAssert(format, "svg")

	if err := Export(element.Output{}, filepath.Join(dir, "none.png")); err == nil {
		tst.Errorf("test failed: diagram of an empty output\n")
	}
}

func Test_summary01(tst *testing.T) {

	chk.PrintTitle("summary01")

	box := DrawSummaryBox("Beam", []string{"As = 6.03 cm²", "3 x ø16"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	chk.IntAssert(len(lines), 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		chk.IntAssert(len([]rune(l)), width)
	}
}
