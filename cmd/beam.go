package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/beam"
	"github.com/alexiusacademia/rcalc/internal/element"
)

var (
	beamParams beam.Params
	beamOut    outputFlags
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Design the tension reinforcement of a beam section",
	Long: `Calculate the required tension reinforcement of a rectangular or
T-shaped beam section and select the number of bars.

Sections:
  support  - hogging moment, rectangular web, top bars
  span     - sagging moment, apparent or real T-section, bottom bars

Without --flange-width the span section is rectangular.

Examples:
  # Support section 30x50 cm, M = 120 kNm
  rcalc beam --section support --width 30 --height 50 --cover 30 --bar 16 --moment 120

  # T-section in span with the ASCII diagram
  rcalc beam --section span -b 30 --height 60 --flange-width 120 --flange-thickness 12 -m 350 --diagram`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runElement(beamOut, element.NewBeam(beamParams))
	},
}

func init() {
	rootCmd.AddCommand(beamCmd)
	f := beamCmd.Flags()

	sectionFlag := (*string)(&beamParams.Section)
	f.StringVar(sectionFlag, "section", string(beam.Support), "Section type (support, span)")

	// Geometry flags
	f.Float64VarP(&beamParams.Width, "width", "b", 0, "Web width b_w (cm) [required]")
	f.Float64Var(&beamParams.Height, "height", 0, "Total depth h (cm) [required]")
	f.Float64Var(&beamParams.FlangeWidth, "flange-width", 0, "Effective flange width b_eff (cm), span only")
	f.Float64Var(&beamParams.FlangeThickness, "flange-thickness", 0, "Flange thickness h_f (cm), span only")

	// Reinforcement flags
	f.Float64VarP(&beamParams.Cover, "cover", "c", 30, "Concrete cover (mm)")
	f.Float64Var(&beamParams.StirrupDiameter, "stirrup", 8, "Stirrup diameter (mm)")
	f.Float64Var(&beamParams.BarDiameter, "bar", 16, "Main bar diameter (mm)")

	// Loading flag
	f.Float64VarP(&beamParams.Moment, "moment", "m", 0, "Design moment M_Ed (kNm) [required]")

	materialFlags(beamCmd, &beamParams.ConcreteClass, &beamParams.SteelGrade, &beamParams.ExposureClass)
	beamOut.register(beamCmd)

	beamCmd.MarkFlagRequired("width")
	beamCmd.MarkFlagRequired("height")
	beamCmd.MarkFlagRequired("moment")
}

// materialFlags registers the catalog selections shared by the design commands
func materialFlags(cmd *cobra.Command, concrete, steel, exposure *string) {
	cmd.Flags().StringVar(concrete, "concrete", "C25/30", "Concrete class")
	cmd.Flags().StringVar(steel, "steel", "RB500W", "Steel grade")
	cmd.Flags().StringVar(exposure, "exposure", "", "Exposure class for the nominal cover check (e.g. XC1)")
}

// runElement calculates one element and prints it
func runElement(out outputFlags, e element.Element) error {
	o, err := element.Calculate(e)
	if err != nil {
		return err
	}
	return out.show(os.Stdout, []element.Output{o})
}
