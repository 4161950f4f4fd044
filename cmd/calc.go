package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/report"
)

var (
	calcFiles []string
	calcOut   outputFlags
	calcDocs  documentFlags
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate elements described in JSON, YAML or .rcalc files",
	Long: `Load one or more element files and calculate their reinforcement.

An element file names the element kind and holds its data:

  {
    "element": "beam",
    "info": {"name": "B-1"},
    "data": {"section": "support", "width": 30, "height": 50, "cover": 30,
             "stirrup_diameter": 8, "bar_diameter": 16, "moment": 120,
             "concrete_class": "C25/30", "steel_grade": "RB500W"}
  }

Files ending in .yaml or .yml are read as YAML with the same layout.

Examples:
  rcalc calc --file beam.json
  rcalc calc -f b1.json -f f1.yaml --pdf report.pdf --xlsx report.xlsx`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringArrayVarP(&calcFiles, "file", "f", nil, "Element file (repeatable) [required]")
	calcCmd.MarkFlagRequired("file")
	calcOut.register(calcCmd)
	calcDocs.register(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	elements := make([]element.Element, 0, len(calcFiles))
	for _, path := range calcFiles {
		e, err := element.LoadFromFile(path)
		if err != nil {
			return err
		}
		if e.Info == nil {
			e.Info = map[string]any{}
		}
		if _, ok := e.Info["name"]; !ok {
			e.Info["name"] = path
		}
		elements = append(elements, e)
	}

	outputs, err := element.CalculateAll(elements)
	if err != nil {
		return err
	}
	if err := calcOut.show(os.Stdout, outputs); err != nil {
		return err
	}
	return calcDocs.write(outputs)
}

// documentFlags select the report files written after a calculation
type documentFlags struct {
	pdf      string
	xlsx     string
	title    string
	diagrams bool
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "Write a PDF report")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "Write a workbook report")
	cmd.Flags().StringVar(&f.title, "title", "", "Report title")
	cmd.Flags().BoolVar(&f.diagrams, "report-diagrams", true, "Embed diagrams in the PDF report")
}

func (f *documentFlags) write(outputs []element.Output) error {
	if f.pdf == "" && f.xlsx == "" {
		return nil
	}
	meta := report.NewMeta(f.title, cfg.Report.Project, cfg.Report.Author)

	if f.pdf != "" {
		if err := writeFile(f.pdf, func(file *os.File) error {
			return report.WritePDF(file, meta, outputs, report.PDFOptions{Diagrams: f.diagrams})
		}); err != nil {
			return fmt.Errorf("writing %s: %w", f.pdf, err)
		}
		fmt.Fprintf(os.Stderr, "Report written to: %s\n", f.pdf)
	}
	if f.xlsx != "" {
		if err := writeFile(f.xlsx, func(file *os.File) error {
			return report.WriteXLSX(file, meta, outputs)
		}); err != nil {
			return fmt.Errorf("writing %s: %w", f.xlsx, err)
		}
		fmt.Fprintf(os.Stderr, "Workbook written to: %s\n", f.xlsx)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
