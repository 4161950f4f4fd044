package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/rcalc/internal/element"
)

// Sheet names of the workbook export
const (
	SheetSummary    = "Summary"
	SheetRemarks    = "Remarks"
	SheetParameters = "Parameters"
)

// WriteXLSX exports the outputs to a workbook with a summary of the
// reinforcement, the remarks and every intermediate value
func WriteXLSX(w io.Writer, meta Meta, outputs []element.Output) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	for _, s := range []string{SheetRemarks, SheetParameters} {
		if _, err := f.NewSheet(s); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	// Summary
	summary := [][]any{
		{meta.Title},
		{"Project", meta.Project},
		{"Author", meta.Author},
		{"Date", meta.Date.Format("2006-01-02")},
		{"Calculation", meta.ID},
		{},
		{"Element", "Kind", "Position", "Required (cm²)", "Provided (cm²)", "Reinforcement"},
	}
	header := len(summary)
	for _, r := range Rows(outputs) {
		summary = append(summary, []any{r.Element, r.Kind, r.Position, number(r.Required), number(r.Provided), r.Layout})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, fmt.Sprintf("A%d", header), fmt.Sprintf("F%d", header), bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "A", "F", 18); err != nil {
		return err
	}

	// Remarks and parameters
	remarks := [][]any{{"Element", "Result", "Remark"}}
	params := [][]any{{"Element", "Parameter", "Value"}}
	for _, o := range outputs {
		remarks = append(remarks, []any{o.Name(), Verdict(o.Results), ""})
		if o.Results != nil {
			for _, r := range o.Results.Remarks {
				remarks = append(remarks, []any{o.Name(), "", r})
			}
		}
		values, err := Parameters(o)
		if err != nil {
			return err
		}
		for _, v := range values {
			params = append(params, []any{o.Name(), v.Name, v.Value})
		}
	}
	if err := writeRows(f, SheetRemarks, remarks); err != nil {
		return err
	}
	if err := writeRows(f, SheetParameters, params); err != nil {
		return err
	}
	for _, s := range []string{SheetRemarks, SheetParameters} {
		if err := f.SetCellStyle(s, "A1", "C1", bold); err != nil {
			return err
		}
		if err := f.SetColWidth(s, "A", "B", 22); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetRemarks, "C", "C", 90); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// number keeps formatted areas numeric in the sheet
func number(s string) any {
	var v float64
	if _, err := fmt.Sscan(strings.TrimSpace(s), &v); err != nil {
		return s
	}
	return v
}
