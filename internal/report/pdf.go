package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/rcalc/internal/diagram"
	"github.com/alexiusacademia/rcalc/internal/element"
)

// PDFOptions control the PDF report content
type PDFOptions struct {
	// Diagrams embeds the section or plan drawing of every element
	Diagrams bool
}

var tableWidths = []float64{40, 32, 32, 76}

// WritePDF renders an A4 report of the outputs
func WritePDF(w io.Writer, meta Meta, outputs []element.Output, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s  |  page %d", meta.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Calculation: %s", meta.ID))
	pdf.Ln(10)

	for i, o := range outputs {
		if err := writeElement(pdf, tr, i+1, o, opts); err != nil {
			return err
		}
	}
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func writeElement(pdf *gofpdf.Fpdf, tr func(string) string, n int, o element.Output, opts PDFOptions) error {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%d. %s (%s)", n, o.Name(), o.Kind)))
	pdf.Ln(9)

	// Reinforcement table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for j, h := range []string{"Position", "Required cm²", "Provided cm²", "Reinforcement"} {
		pdf.CellFormat(tableWidths[j], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range Rows([]element.Output{o}) {
		pdf.CellFormat(tableWidths[0], 6, tr(row.Position), "1", 0, "L", false, 0, "")
		pdf.CellFormat(tableWidths[1], 6, row.Required, "1", 0, "R", false, 0, "")
		pdf.CellFormat(tableWidths[2], 6, row.Provided, "1", 0, "R", false, 0, "")
		pdf.CellFormat(tableWidths[3], 6, tr(row.Layout), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Result: "+Verdict(o.Results))
	pdf.Ln(7)

	if o.Results != nil && len(o.Results.Remarks) > 0 {
		pdf.SetFont("Helvetica", "", 9)
		for _, r := range o.Results.Remarks {
			pdf.MultiCell(0, 5, tr("- "+r), "", "L", false)
		}
		pdf.Ln(2)
	}

	if opts.Diagrams {
		if err := embedDiagram(pdf, n, o); err != nil {
			return err
		}
	}
	pdf.Ln(4)
	return nil
}

// embedDiagram draws the element with gonum/plot and places the PNG
func embedDiagram(pdf *gofpdf.Fpdf, n int, o element.Output) error {
	var buf bytes.Buffer
	if data, ok := diagram.Section(o); ok {
		p, err := diagram.SectionPlot(data)
		if err != nil {
			return err
		}
		if err := diagram.WritePNG(p, &buf, 4*vg.Inch, 4*vg.Inch); err != nil {
			return err
		}
	} else if data, ok := diagram.Plan(o); ok {
		p, err := diagram.PlanPlot(data)
		if err != nil {
			return err
		}
		if err := diagram.WritePNG(p, &buf, 4*vg.Inch, 4*vg.Inch); err != nil {
			return err
		}
	} else {
		return nil
	}

	name := fmt.Sprintf("diagram-%d-%s", n, strings.ReplaceAll(o.Name(), " ", "_"))
	img := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, img, &buf)

	const size = 80.0
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+size > pageHeight-bottom-15 {
		pdf.AddPage()
	}
	pdf.ImageOptions(name, 15, pdf.GetY(), size, size, true, img, 0, "")
	return pdf.Error()
}
