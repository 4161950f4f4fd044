package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/ec2"
)

var showExposure bool

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the concrete classes, steel grades and bar diameters",
	Long: `Print the material catalog used by the calculations.

Examples:
  rcalc materials
  rcalc materials --exposure`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.Flags().BoolVar(&showExposure, "exposure", false, "List the exposure classes and durability covers")
}

func runMaterials(cmd *cobra.Command, args []string) {
	if showExposure {
		printExposure()
		return
	}

	fmt.Println()
	fmt.Println("CONCRETE CLASSES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Class\tfck\tfck,cube\tfcm\tfctm\tfctk,0.05\tfctk,0.95\tEcm\tfcd\n")
	fmt.Fprintf(w, "  \t[MPa]\t[MPa]\t[MPa]\t[MPa]\t[MPa]\t[MPa]\t[GPa]\t[MPa]\n")
	for _, c := range ec2.ConcreteClasses() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.1f\t%.1f\t%.1f\t%.0f\t%.2f\n",
			c.Class, c.Fck, c.FckCube, c.Fcm, c.Fctm, c.Fctk005, c.Fctk095, c.Ecm, c.Fcd()/1000)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STEEL GRADES:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tfyk [MPa]\tfyd [MPa]\n")
	for _, s := range ec2.SteelGrades() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\n", s.Grade, s.Fyk, s.Fyd)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("BAR DIAMETERS:")
	fmt.Println(rule)
	d := make([]string, len(ec2.Diameters))
	for i, v := range ec2.Diameters {
		d[i] = fmt.Sprintf("ø%d", v)
	}
	fmt.Printf("  %s\n", strings.Join(d, "  "))
	fmt.Println()
}

func printExposure() {
	fmt.Println()
	fmt.Println("EXPOSURE CLASSES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Class\tMin. concrete\tw/c\tCement [kg/m³]\tc_min,dur S1..S6 [mm]\tDescription\n")
	for _, e := range ec2.ExposureClasses() {
		covers := "-"
		if e.Covers != nil {
			s := make([]string, len(e.Covers))
			for i, c := range e.Covers {
				s[i] = fmt.Sprint(c)
			}
			covers = strings.Join(s, "/")
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.0f\t%s\t%s\n", e.Class, e.MinConcrete, e.MaxWC, e.MinCement, covers, e.Description)
	}
	w.Flush()
	fmt.Println()
}
