package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/mockapi"
)

var (
	serveAddr      string
	serveSeed      bool
	serveAdvertise bool
	serveInstance  string
)

func init() {
	serveMockCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "Address to listen on")
	serveMockCmd.Flags().BoolVar(&serveSeed, "seed", false, "Start with a few sample records")
	serveMockCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Announce the registry over mDNS for 'discover'")
	serveMockCmd.Flags().StringVar(&serveInstance, "instance", mockapi.DefaultInstance, "mDNS instance name used with --advertise")

	rootCmd.AddCommand(serveMockCmd)
}

var serveMockCmd = &cobra.Command{
	Use:   "serve-mock",
	Short: "Run an in-memory pets registry",
	Long: `Run a local registry with the same routes as the real one. Records live
in memory and are lost when the server stops.

Point the other commands at it with --api-url.`,
	Example: `  # Terminal 1
  mascotas-admin serve-mock --seed --log-level info

  # Terminal 2
  mascotas-admin --api-url http://127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogging("stderr"); err != nil {
			return err
		}

		srv := mockapi.New(mockapi.Config{
			Addr:      serveAddr,
			Endpoints: cfg.API.Endpoints,
			Advertise: serveAdvertise,
			Instance:  serveInstance,
		})
		if serveSeed {
			n := srv.Store().Seed(mockapi.SampleInputs())
			logging.Info("Seeded sample records", zap.Int("count", n))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Mock registry on http://%s (Ctrl+C to stop)\n", serveAddr)

		ctx, stop := signalContext(cmd.Context())
		defer stop()
		return srv.Start(ctx)
	},
}
