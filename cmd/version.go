package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rcalc v%s\n", version.Version)
		fmt.Printf("Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Println("Reinforced Concrete Reinforcement Calculator")
		fmt.Println("Based on PN-EN 1992-1-1 (Eurocode 2)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
