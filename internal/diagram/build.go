package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rcalc/internal/beam"
	"github.com/alexiusacademia/rcalc/internal/column"
	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/footing"
	"github.com/alexiusacademia/rcalc/internal/slab"
)

// stripWidth is the slab design strip (mm)
const stripWidth = 1000.0

// provided returns the layout of position i, or nil
func provided(res *design.Result, i int) *design.Reinforcement {
	if res == nil || i >= len(res.ProvidedReinforcement) {
		return nil
	}
	return res.ProvidedReinforcement[i]
}

func barRow(r *design.Reinforcement, y float64) []BarRow {
	if r == nil || r.BarCount == nil {
		return nil
	}
	return []BarRow{{Y: y, Count: *r.BarCount, Diameter: r.Diameter * 1000, Label: r.Text}}
}

// Section builds the cross-section drawing of a calculated beam, column or
// slab. ok is false for footings and for results without intermediate
// values.
func Section(o element.Output) (data SectionDiagramData, ok bool) {
	title := fmt.Sprintf("%s section", o.Name())

	switch s := o.Parameters.(type) {
	case *beam.State:
		data = SectionDiagramData{
			Title:            title,
			Width:            s.Width * 1000,
			Height:           s.Height * 1000,
			StressBlockDepth: s.NeutralAxis * 1000,
		}
		axis := (s.Cover + s.Stirrup + s.Bar/2) * 1000
		y := axis
		if len(o.Results.Positions) > 0 && o.Results.Positions[0] == string(beam.Support) {
			// Hogging: tension on top, compression at the bottom of the web
			y = data.Height - axis
			data.CompressionBottom = true
		} else if s.FlangeWidth > s.Width {
			data.FlangeWidth = s.FlangeWidth * 1000
			data.FlangeThickness = s.FlangeThickness * 1000
		}
		data.Rows = barRow(provided(o.Results, 0), y)
		return data, true

	case *column.State:
		data = SectionDiagramData{
			Title:            title,
			Width:            s.Width * 1000,
			Height:           s.Height * 1000,
			StressBlockDepth: math.Min(s.Xi*s.EffectiveDepth, s.Height) * 1000,
		}
		a := s.A * 1000
		data.Rows = append(barRow(provided(o.Results, 0), a), barRow(provided(o.Results, 1), data.Height-a)...)
		return data, true

	case *slab.State:
		data = SectionDiagramData{
			Title:            title,
			Width:            stripWidth,
			Height:           s.Thickness * 1000,
			StressBlockDepth: s.Main.Alpha1 * s.Main.EffectiveDepth * 1000,
		}
		if r := provided(o.Results, 0); r != nil && r.Spacing != nil && *r.Spacing > 0 {
			data.Rows = []BarRow{{
				Y:        (s.Cover + s.Bar/2) * 1000,
				Count:    int(math.Floor(1 / *r.Spacing)),
				Diameter: r.Diameter * 1000,
				Label:    r.Text,
			}}
		}
		return data, true
	}
	return SectionDiagramData{}, false
}

// Plan builds the plan drawing of a calculated footing
func Plan(o element.Output) (PlanDiagramData, bool) {
	s, ok := o.Parameters.(*footing.State)
	if !ok {
		return PlanDiagramData{}, false
	}
	data := PlanDiagramData{
		Title:        fmt.Sprintf("%s plan", o.Name()),
		Length:       s.Length * 1000,
		Width:        s.Width * 1000,
		ColumnLength: s.ColumnLength * 1000,
		ColumnWidth:  s.ColumnWidth * 1000,
	}
	if r := provided(o.Results, 0); r != nil && r.Spacing != nil {
		data.SpacingX = *r.Spacing * 1000
		data.MeshX = r.Text
	}
	if r := provided(o.Results, 1); r != nil && r.Spacing != nil {
		data.SpacingY = *r.Spacing * 1000
		data.MeshY = r.Text
	}
	if s.Punching != nil {
		data.ControlDistance = s.Punching.A * 1000
	}
	return data, true
}

// Render draws the ASCII diagram of any calculated element
func Render(o element.Output) string {
	if data, ok := Section(o); ok {
		return DrawASCIISectionDiagram(data)
	}
	if data, ok := Plan(o); ok {
		return DrawFootingPlan(data)
	}
	return ""
}

// Export writes the image diagram of any calculated element
func Export(o element.Output, filename string) error {
	if data, ok := Section(o); ok {
		return ExportSectionDiagram(data, filename)
	}
	if data, ok := Plan(o); ok {
		return ExportFootingPlan(data, filename)
	}
	return fmt.Errorf("no diagram for %s", o.Kind)
}
