package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/element"
	"github.com/alexiusacademia/rcalc/internal/footing"
)

var (
	footingParams footing.Params
	footingOut    outputFlags
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Design the bottom mesh and punching resistance of a pad footing",
	Long: `Calculate the bottom reinforcement of an isolated pad footing under a
centric column load, the anchorage length of the column bars and the
punching shear resistance.

A footing shallower than required for punching at the column face or for
the anchorage of the column bars is rejected without reinforcement.

Examples:
  # 2.0 x 2.0 m footing, h = 50 cm, column 40x40 cm, N = 1500 kN
  rcalc footing --length 200 --width 200 --height 50 --column-length 40 --column-width 40 --axial 1500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runElement(footingOut, element.NewFooting(footingParams))
	},
}

func init() {
	rootCmd.AddCommand(footingCmd)
	f := footingCmd.Flags()

	f.Float64VarP(&footingParams.Length, "length", "l", 0, "Footing length L along x (cm) [required]")
	f.Float64VarP(&footingParams.Width, "width", "b", 0, "Footing width B along y (cm) [required]")
	f.Float64Var(&footingParams.Height, "height", 0, "Footing height h (cm) [required]")
	f.Float64Var(&footingParams.ColumnLength, "column-length", 0, "Column dimension c1 along x (cm) [required]")
	f.Float64Var(&footingParams.ColumnWidth, "column-width", 0, "Column dimension c2 along y (cm) [required]")

	f.Float64VarP(&footingParams.Cover, "cover", "c", 50, "Concrete cover (mm)")
	f.Float64Var(&footingParams.BarDiameter, "bar", 12, "Mesh bar diameter (mm)")
	f.Float64Var(&footingParams.ColumnBarDiameter, "column-bar", 16, "Column bar diameter (mm)")

	f.Float64VarP(&footingParams.AxialForce, "axial", "n", 0, "Column load N_Ed (kN) [required]")

	materialFlags(footingCmd, &footingParams.ConcreteClass, &footingParams.SteelGrade, &footingParams.ExposureClass)
	footingOut.register(footingCmd)

	for _, name := range []string{"length", "width", "height", "column-length", "column-width", "axial"} {
		footingCmd.MarkFlagRequired(name)
	}
}
