// Package report renders calculated elements as PDF and spreadsheet
// documents.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alexiusacademia/rcalc/internal/design"
	"github.com/alexiusacademia/rcalc/internal/element"
)

// Meta identifies a report
type Meta struct {
	Title   string    `json:"title"`
	Project string    `json:"project"`
	Author  string    `json:"author"`
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
}

// NewMeta stamps a report with a fresh calculation id and the current date
func NewMeta(title, project, author string) Meta {
	if title == "" {
		title = "Reinforcement Calculation"
	}
	return Meta{
		Title:   title,
		Project: project,
		Author:  author,
		ID:      uuid.NewString(),
		Date:    time.Now(),
	}
}

// Row is one reinforcement position of an element, in report units
type Row struct {
	Element  string
	Kind     string
	Position string
	Required string // cm²
	Provided string // cm²
	Layout   string
}

// Rows flattens the outputs into one row per reinforcement position
func Rows(outputs []element.Output) []Row {
	var rows []Row
	for _, o := range outputs {
		res := o.Results
		if res == nil {
			continue
		}
		for i, pos := range res.Positions {
			row := Row{
				Element:  o.Name(),
				Kind:     o.Kind.String(),
				Position: pos,
				Required: Area(at(res.RequiredArea, i)),
				Provided: Area(at(res.ProvidedArea, i)),
				Layout:   "-",
			}
			if i < len(res.ProvidedReinforcement) && res.ProvidedReinforcement[i] != nil {
				row.Layout = res.ProvidedReinforcement[i].Text
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

// Area formats an area in m² as cm², or "-" when not computed
func Area(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v*1e4)
}

// Verdict summarises the checks of a result
func Verdict(res *design.Result) string {
	if res == nil {
		return "not calculated"
	}
	for _, c := range res.Checks {
		if !c.Passed {
			return "NOT ADEQUATE"
		}
	}
	for _, p := range res.ProvidedReinforcement {
		if p == nil {
			return "NOT ADEQUATE"
		}
	}
	return "ADEQUATE"
}

// Parameter is one named intermediate value
type Parameter struct {
	Name  string
	Value any
}

// Parameters flattens the intermediate record of an output into sorted
// name/value pairs; nested records use dotted names
func Parameters(o element.Output) ([]Parameter, error) {
	if o.Parameters == nil {
		return nil, nil
	}
	raw, err := json.Marshal(o.Parameters)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	var out []Parameter
	flatten("", m, &out)
	return out, nil
}

func flatten(prefix string, m map[string]any, out *[]Parameter) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := m[k].(map[string]any); ok {
			flatten(name, nested, out)
			continue
		}
		*out = append(*out, Parameter{Name: name, Value: m[k]})
	}
}
