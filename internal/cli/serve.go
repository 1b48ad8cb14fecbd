package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"azmig/internal/conformance"
	"azmig/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment API over HTTP",
	Long: `Start the HTTP API used by the dashboard:

	GET  /health          liveness probe
	POST /api/assess      assess posted resource records for a scenario
	POST /api/diagnostics run the conformance diagnostics and return the report

The server runs until interrupted.

Examples:
  azmig serve
  azmig serve --addr :9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus()
		if err != nil {
			return err
		}
		srv := server.New(corpus, cfg.Runtime.ListenAddr, conformance.Options{
			MatrixPath:  cfg.Diagnostics.MatrixPath,
			ChunkSize:   cfg.Diagnostics.LinkChunkSize,
			LinkTimeout: time.Duration(cfg.Diagnostics.LinkTimeoutSeconds) * time.Second,
			SkipLinks:   cfg.Diagnostics.SkipLinks,
		})
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Runtime.ListenAddr)
		return srv.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&cfg.Runtime.ListenAddr, "addr", cfg.Runtime.ListenAddr, "Listen address")
}
