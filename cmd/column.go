package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/column"
	"github.com/alexiusacademia/rcalc/internal/element"
)

var (
	columnParams column.Params
	columnOut    outputFlags
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Design the reinforcement of an eccentrically loaded column",
	Long: `Calculate the reinforcement of both faces of a rectangular column
under axial compression and bending about one axis.

The moment is raised to N_Ed·e_0 when it is below the minimum
eccentricity e_0 = max(h/30, 20 mm). Face 1 is the tension face.

Examples:
  # 30x40 cm column, N = 1200 kN, M = 80 kNm
  rcalc column --width 30 --height 40 --axial 1200 --moment 80`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runElement(columnOut, element.NewColumn(columnParams))
	},
}

func init() {
	rootCmd.AddCommand(columnCmd)
	f := columnCmd.Flags()

	f.Float64VarP(&columnParams.Width, "width", "b", 0, "Section width b (cm) [required]")
	f.Float64Var(&columnParams.Height, "height", 0, "Section depth h in the bending plane (cm) [required]")

	f.Float64VarP(&columnParams.Cover, "cover", "c", 30, "Concrete cover (mm)")
	f.Float64Var(&columnParams.StirrupDiameter, "stirrup", 8, "Stirrup diameter (mm)")
	f.Float64Var(&columnParams.BarDiameter, "bar", 16, "Main bar diameter (mm)")

	f.Float64VarP(&columnParams.AxialForce, "axial", "n", 0, "Axial compression N_Ed (kN) [required]")
	f.Float64VarP(&columnParams.Moment, "moment", "m", 0, "Design moment M_Ed (kNm)")

	materialFlags(columnCmd, &columnParams.ConcreteClass, &columnParams.SteelGrade, &columnParams.ExposureClass)
	columnOut.register(columnCmd)

	columnCmd.MarkFlagRequired("width")
	columnCmd.MarkFlagRequired("height")
	columnCmd.MarkFlagRequired("axial")
}
