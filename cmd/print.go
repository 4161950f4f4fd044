package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/diagram"
	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/report"
)

const rule = "───────────────────────────────────────────────────────────────"

// outputFlags are shared by the commands that print calculated elements
type outputFlags struct {
	json    bool
	diagram bool
	image   string
	verbose bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the results as JSON")
	cmd.Flags().BoolVar(&f.diagram, "diagram", false, "Show ASCII section or plan diagram")
	cmd.Flags().StringVarP(&f.image, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print every intermediate value")
}

// show prints the outputs in the requested form and exports diagrams
func (f *outputFlags) show(w io.Writer, outputs []element.Output) error {
	if f.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return err
		}
	} else {
		for _, o := range outputs {
			printOutput(w, o)
			if f.verbose {
				if err := printParameters(w, o); err != nil {
					return err
				}
			}
			if f.diagram {
				fmt.Fprintln(w, diagram.Render(o))
			}
		}
	}

	if f.image == "" {
		return nil
	}
	for i, o := range outputs {
		name := f.image
		if len(outputs) > 1 {
			name = numbered(f.image, i+1)
		}
		if err := diagram.Export(o, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting diagram of %s: %v\n", o.Name(), err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Diagram exported to: %s\n", name)
	}
	return nil
}

// numbered inserts an index before the extension: out.png -> out-2.png
func numbered(name string, n int) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
}

func printOutput(w io.Writer, o element.Output) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s - PN-EN 1992-1-1\n", headline(o))
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "REINFORCEMENT:")
	fmt.Fprintln(w, rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Position\tRequired (cm²)\tProvided (cm²)\tBars\n")
	fmt.Fprintf(tw, "  ────────\t──────────────\t──────────────\t────\n")
	for _, row := range report.Rows([]element.Output{o}) {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", row.Position, row.Required, row.Provided, row.Layout)
	}
	tw.Flush()
	fmt.Fprintln(w)

	if o.Results == nil {
		return
	}
	if len(o.Results.Checks) > 0 {
		fmt.Fprintln(w, "CHECKS:")
		fmt.Fprintln(w, rule)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, c := range o.Results.Checks {
			mark := "✓"
			if !c.Passed {
				mark = "✗"
			}
			fmt.Fprintf(tw, "  %s\t%s\n", c.Name, mark)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if len(o.Results.Remarks) > 0 {
		fmt.Fprintln(w, "REMARKS:")
		fmt.Fprintln(w, rule)
		for _, r := range o.Results.Remarks {
			fmt.Fprintf(w, "  • %s\n", r)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, diagram.DrawSummaryBox("RESULT: "+report.Verdict(o.Results), summaryLines(o)))
}

func headline(o element.Output) string {
	name := o.Name()
	if name == o.Kind.String() {
		return fmt.Sprintf("%s DESIGN", strings.ToUpper(name))
	}
	return fmt.Sprintf("%s DESIGN: %s", strings.ToUpper(o.Kind.String()), name)
}

func summaryLines(o element.Output) []string {
	var lines []string
	for _, row := range report.Rows([]element.Output{o}) {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Position, row.Layout))
	}
	return lines
}

func printParameters(w io.Writer, o element.Output) error {
	values, err := report.Parameters(o)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "INTERMEDIATE VALUES:")
	fmt.Fprintln(w, rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range values {
		fmt.Fprintf(tw, "  %s:\t%v\n", v.Name, v.Value)
	}
	tw.Flush()
	return nil
}
