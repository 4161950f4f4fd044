package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP and websocket",
	Long: `Start the calculation service.

Routes:
  POST /api/calc             element envelope or array of envelopes
  POST /api/calc/{kind}      bare data record of a beam, column, slab or footing
  GET  /api/materials        material catalog
  POST /api/report/pdf       PDF report of the posted elements
  POST /api/report/xlsx      workbook report of the posted elements
  GET  /api/template.xlsx    empty batch import workbook
  GET  /ws                   websocket session, one element per message

The listen address and rate limit come from rcalc.ini ([server]) or the
RCALC_ADDR, RCALC_RATE and RCALC_BURST environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return server.NewServer(cfg).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the settings)")
}
