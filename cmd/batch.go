package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/element"
)

var (
	batchFile     string
	batchTemplate string
	batchOut      outputFlags
	batchDocs     documentFlags
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate every element listed in a workbook",
	Long: `Import elements from a workbook and calculate them in one run.

Each sheet named beam, column, slab or footing lists one element per row.
The first row holds the data field names; an optional "name" column
labels the element. Use --template to write an empty workbook with the
expected headers.

Examples:
  rcalc batch --template elements.xlsx
  rcalc batch --file elements.xlsx --xlsx results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Workbook to import")
	batchCmd.Flags().StringVar(&batchTemplate, "template", "", "Write an empty import workbook and exit")
	batchOut.register(batchCmd)
	batchDocs.register(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchTemplate != "" {
		if err := writeFile(batchTemplate, func(f *os.File) error {
			return element.WriteWorkbookTemplate(f)
		}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Template written to: %s\n", batchTemplate)
		return nil
	}
	if batchFile == "" {
		return fmt.Errorf("either --file or --template is required")
	}

	f, err := os.Open(batchFile)
	if err != nil {
		return err
	}
	defer f.Close()

	elements, rowErrs, err := element.ReadWorkbook(f)
	if err != nil {
		return fmt.Errorf("%s: %w", batchFile, err)
	}
	for _, e := range rowErrs {
		fmt.Fprintf(os.Stderr, "Skipped: %v\n", e)
	}
	if len(elements) == 0 {
		return fmt.Errorf("%s: no elements found", batchFile)
	}

	outputs, err := element.CalculateAll(elements)
	if err != nil {
		return err
	}
	if err := batchOut.show(os.Stdout, outputs); err != nil {
		return err
	}
	return batchDocs.write(outputs)
}
