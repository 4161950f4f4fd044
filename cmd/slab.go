package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/slab"
)

var (
	slabParams slab.Params
	slabOut    outputFlags
)

var slabCmd = &cobra.Command{
	Use:     "slab",
	Aliases: []string{"plate"},
	Short:   "Design the bar spacing of a slab strip",
	Long: `Calculate the main and secondary reinforcement of a 1 m slab strip
and select the bar spacing from the standard list.

Without --secondary-moment the secondary bars are sized as distribution
reinforcement.

Examples:
  # 18 cm slab, M = 25 kNm/m in the main direction
  rcalc slab --thickness 18 --moment 25 --secondary-moment 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runElement(slabOut, element.NewSlab(slabParams))
	},
}

func init() {
	rootCmd.AddCommand(slabCmd)
	f := slabCmd.Flags()

	f.Float64VarP(&slabParams.Thickness, "thickness", "t", 0, "Slab thickness h (cm) [required]")
	f.Float64VarP(&slabParams.Cover, "cover", "c", 20, "Concrete cover (mm)")
	f.Float64Var(&slabParams.BarDiameter, "bar", 10, "Bar diameter (mm)")
	f.Float64VarP(&slabParams.Moment, "moment", "m", 0, "Design moment in the main direction (kNm/m) [required]")
	f.Float64Var(&slabParams.SecondaryMoment, "secondary-moment", 0, "Design moment in the secondary direction (kNm/m)")

	materialFlags(slabCmd, &slabParams.ConcreteClass, &slabParams.SteelGrade, &slabParams.ExposureClass)
	slabOut.register(slabCmd)

	slabCmd.MarkFlagRequired("thickness")
	slabCmd.MarkFlagRequired("moment")
}
