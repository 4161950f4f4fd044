package element

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/rcalc/internal/ec2"
)

// infoColumn holds the element name in a workbook row
const infoColumn = "name"

// ReadWorkbook imports elements from a workbook. Each sheet named after an
// element kind (beam, column, slab, footing and their aliases) holds one
// element per row; the first row names the data fields. Sheets with other
// names are skipped. Row errors are collected and returned alongside the
// elements that parsed.
func ReadWorkbook(r io.Reader) ([]Element, []error, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var (
		elements []Element
		rowErrs  []error
	)
	for _, sheet := range f.GetSheetList() {
		kind, err := ec2.ParseKind(strings.ToLower(strings.TrimSpace(sheet)))
		if err != nil {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		header := rows[0]
		for i := 1; i < len(rows); i++ {
			if blank(rows[i]) {
				continue
			}
			e, err := parseRow(kind, header, rows[i])
			if err != nil {
				rowErrs = append(rowErrs, fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err))
				continue
			}
			elements = append(elements, e)
		}
	}
	return elements, rowErrs, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow maps a row onto the parameter record through its json names
func parseRow(kind ec2.ElementKind, header, row []string) (Element, error) {
	data := make(map[string]any, len(header))
	info := map[string]any{}
	for j, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || j >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[j])
		if cell == "" {
			continue
		}
		if name == infoColumn {
			info[infoColumn] = cell
			continue
		}
		if v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64); err == nil {
			data[name] = v
		} else {
			data[name] = cell
		}
	}

	raw, err := json.Marshal(map[string]any{"element": kind.String(), "info": info, "data": data})
	if err != nil {
		return Element{}, err
	}
	return Parse(raw, JSON)
}

// WorkbookHeaders returns the data field names of an element kind in
// declaration order, for building import templates
func WorkbookHeaders(kind ec2.ElementKind) []string {
	headers := []string{infoColumn}
	switch kind {
	case ec2.Beam:
		headers = append(headers, "section", "width", "height", "flange_width", "flange_thickness",
			"cover", "stirrup_diameter", "bar_diameter", "moment")
	case ec2.Column:
		headers = append(headers, "width", "height", "cover", "stirrup_diameter", "bar_diameter",
			"axial_force", "moment")
	case ec2.Slab:
		headers = append(headers, "thickness", "cover", "bar_diameter", "moment", "secondary_moment")
	case ec2.Footing:
		headers = append(headers, "length", "width", "height", "column_length", "column_width",
			"cover", "bar_diameter", "column_bar_diameter", "axial_force")
	}
	return append(headers, "concrete_class", "steel_grade", "exposure_class")
}

// WriteWorkbookTemplate writes an empty import workbook with one sheet per
// element kind and its header row
func WriteWorkbookTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	kinds := []ec2.ElementKind{ec2.Beam, ec2.Column, ec2.Slab, ec2.Footing}
	for i, kind := range kinds {
		sheet := kind.String()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		headers := WorkbookHeaders(kind)
		if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
			return err
		}
	}
	return f.Write(w)
}
