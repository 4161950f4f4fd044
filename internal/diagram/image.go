package diagram

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

var (
	outlineColor = color.Black
	blockColor   = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	blockBorder  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steelColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	columnColor  = color.RGBA{R: 128, G: 128, B: 128, A: 200}
	meshColor    = color.RGBA{R: 139, G: 69, B: 19, A: 120}
	controlColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Outline returns the section vertices counter-clockwise from the
// bottom-left corner of the web, centred on x = 0
func (d SectionDiagramData) Outline() []Point {
	bw := d.Width / 2
	if !d.IsT() {
		return []Point{{-bw, 0}, {bw, 0}, {bw, d.Height}, {-bw, d.Height}}
	}
	bf := d.FlangeWidth / 2
	yf := d.Height - d.FlangeThickness
	return []Point{
		{-bw, 0}, {bw, 0}, {bw, yf}, {bf, yf},
		{bf, d.Height}, {-bf, d.Height}, {-bf, yf}, {-bw, yf},
	}
}

// compressionZone clips the outline to the compression block
func (d SectionDiagramData) compressionZone() plotter.XYs {
	if d.StressBlockDepth <= 0 {
		return nil
	}
	depth := math.Min(d.StressBlockDepth, d.Height)
	if d.CompressionBottom {
		return clipSection(d.Outline(), depth, false)
	}
	return clipSection(d.Outline(), d.Height-depth, true)
}

// clipSection keeps the part of the polygon above (or below) the line y = clipY
func clipSection(vertices []Point, clipY float64, above bool) plotter.XYs {
	if len(vertices) < 3 {
		return nil
	}
	inside := func(p Point) bool {
		if above {
			return p.Y >= clipY
		}
		return p.Y <= clipY
	}

	var result plotter.XYs
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		if inside(curr) {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}
		if inside(curr) != inside(next) {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			result = append(result, plotter.XY{X: curr.X + t*(next.X-curr.X), Y: clipY})
		}
	}
	return result
}

// widthAtY finds the min and max X of the outline at a given height
func widthAtY(vertices []Point, y float64) (float64, float64) {
	var xs []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			xs = append(xs, curr.X+t*(next.X-curr.X))
		}
	}
	if len(xs) < 2 {
		return 0, 0
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// rowPositions spreads the bars of a row across the web between the side
// covers
func (d SectionDiagramData) rowPositions(r BarRow) plotter.XYs {
	if r.Count <= 0 {
		return nil
	}
	lo, hi := widthAtY(d.Outline(), r.Y)
	lo = math.Max(lo, -d.Width/2)
	hi = math.Min(hi, d.Width/2)

	// Bar axis sits as far from the sides as from the nearest face
	sideCover := math.Min(r.Y, d.Height-r.Y)
	lo += sideCover
	hi -= sideCover
	if r.Count == 1 || hi <= lo {
		return plotter.XYs{{X: (lo + hi) / 2, Y: r.Y}}
	}
	pts := make(plotter.XYs, r.Count)
	step := (hi - lo) / float64(r.Count-1)
	for i := range pts {
		pts[i] = plotter.XY{X: lo + float64(i)*step, Y: r.Y}
	}
	return pts
}

// SectionPlot builds the cross-section plot with the compression block
// and the bars of every row
func SectionPlot(data SectionDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Section"
	}
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	vertices := data.Outline()
	outline := make(plotter.XYs, len(vertices)+1)
	for i, v := range vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(vertices)] = outline[0]

	line, err := plotter.NewLine(outline)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = outlineColor
	p.Add(line)

	if zone := data.compressionZone(); len(zone) >= 3 {
		block, err := plotter.NewPolygon(zone)
		if err != nil {
			return nil, err
		}
		block.Color = blockColor
		block.LineStyle.Color = blockBorder
		p.Add(block)
	}

	var labels plotter.XYLabels
	for _, r := range data.Rows {
		pts := data.rowPositions(r)
		if len(pts) == 0 {
			continue
		}
		bars, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		bars.GlyphStyle.Color = steelColor
		bars.GlyphStyle.Radius = vg.Points(5)
		bars.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(bars)

		label := r.Label
		if label == "" {
			label = fmt.Sprintf("%d x ø%.0f", r.Count, r.Diameter)
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: pts[len(pts)-1].X + 20, Y: r.Y})
		labels.Labels = append(labels.Labels, label)
	}
	if data.StressBlockDepth > 0 {
		y := data.Height - data.StressBlockDepth/2
		if data.CompressionBottom {
			y = data.StressBlockDepth / 2
		}
		_, hi := widthAtY(vertices, y)
		labels.XYs = append(labels.XYs, plotter.XY{X: hi + 20, Y: y})
		labels.Labels = append(labels.Labels, fmt.Sprintf("λx=%.1fmm", data.StressBlockDepth))
	}
	if len(labels.XYs) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	return p, nil
}

// PlanPlot builds the footing plan with the column, the mesh and the
// punching control perimeter
func PlanPlot(data PlanDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Footing Plan"
	}
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	L, B := data.Length/2, data.Width/2
	c1, c2 := data.ColumnLength/2, data.ColumnWidth/2

	// Mesh
	if data.SpacingX > 0 {
		for y := -B + data.SpacingX/2; y < B; y += data.SpacingX {
			if err := addLine(p, plotter.XYs{{X: -L, Y: y}, {X: L, Y: y}}, meshColor, 0.5, nil); err != nil {
				return nil, err
			}
		}
	}
	if data.SpacingY > 0 {
		for x := -L + data.SpacingY/2; x < L; x += data.SpacingY {
			if err := addLine(p, plotter.XYs{{X: x, Y: -B}, {X: x, Y: B}}, meshColor, 0.5, nil); err != nil {
				return nil, err
			}
		}
	}

	if err := addLine(p, rectangle(L, B), outlineColor, 2, nil); err != nil {
		return nil, err
	}

	column, err := plotter.NewPolygon(rectangle(c1, c2))
	if err != nil {
		return nil, err
	}
	column.Color = columnColor
	column.LineStyle.Color = outlineColor
	p.Add(column)

	if data.ControlDistance > 0 {
		dashes := []vg.Length{vg.Points(5), vg.Points(3)}
		if err := addLine(p, roundedRectangle(c1, c2, data.ControlDistance), controlColor, 1.5, dashes); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width float64, dashes []vg.Length) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(width)
	l.LineStyle.Dashes = dashes
	p.Add(l)
	return nil
}

func rectangle(hx, hy float64) plotter.XYs {
	return plotter.XYs{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}, {X: -hx, Y: -hy}}
}

// roundedRectangle is the control perimeter at distance a around a
// rectangular column
func roundedRectangle(hx, hy, a float64) plotter.XYs {
	const steps = 8
	corners := []struct{ x, y, from float64 }{
		{hx, hy, 0}, {-hx, hy, math.Pi / 2}, {-hx, -hy, math.Pi}, {hx, -hy, 3 * math.Pi / 2},
	}
	var pts plotter.XYs
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			t := c.from + float64(i)/steps*math.Pi/2
			pts = append(pts, plotter.XY{X: c.x + a*math.Cos(t), Y: c.y + a*math.Sin(t)})
		}
	}
	return append(pts, pts[0])
}

// formatOf maps a file extension to a plot format, defaulting to png
func formatOf(filename string) (string, string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff":
		return filename, ext
	}
	return filename + ".png", "png"
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	filename, _ = formatOf(filename)
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(width, height, filename)
}

// ExportSectionDiagram exports a section diagram to an image file
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p, err := SectionPlot(data)
	if err != nil {
		return err
	}
	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// ExportFootingPlan exports a footing plan to an image file
func ExportFootingPlan(data PlanDiagramData, filename string) error {
	p, err := PlanPlot(data)
	if err != nil {
		return err
	}
	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// WritePNG renders a plot as a PNG image
func WritePNG(p *plot.Plot, w io.Writer, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
