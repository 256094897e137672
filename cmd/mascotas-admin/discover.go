package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mascotas/mascotas-admin/internal/discovery"
	"github.com/mascotas/mascotas-admin/internal/ui"
)

var scanTimeout int

func init() {
	discoverCmd.Flags().IntVar(&scanTimeout, "timeout", 3, "Scan timeout in seconds")
	rootCmd.AddCommand(discoverCmd)
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find registries advertised on the local network",
	Long: `Browse mDNS for registries started with 'serve-mock --advertise' and
print the --api-url to use for each one.`,
	Example: `  mascotas-admin discover
  mascotas-admin discover --timeout 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogging("stderr"); err != nil {
			return err
		}
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.Println(ui.HeaderCommandStyle.Render("Scanning for registries..."))

		regs, err := discovery.ScanForRegistries(cmd.Context(), time.Duration(scanTimeout)*time.Second)
		if err != nil {
			return reportFailure(p, "Discovery failed", err)
		}

		if len(regs) == 0 {
			p.PrintWarning("No registries found",
				ui.Detail{Key: "Hint", Value: "start one with 'mascotas-admin serve-mock --advertise'"},
				ui.Detail{Key: "Hint", Value: "multicast must be allowed on this network"},
			)
			return nil
		}

		for _, r := range regs {
			ep := r.Endpoints()
			p.PrintSuccess(r.Instance,
				ui.Detail{Key: "Host", Value: r.Hostname},
				ui.Detail{Key: "API", Value: r.BaseURL()},
				ui.Detail{Key: "List", Value: ep.List},
				ui.Detail{Key: "Record", Value: ep.Record},
				ui.Detail{Key: "Version", Value: r.GetMetadata(discovery.TxtVersion)},
				ui.Detail{Key: "Use", Value: "--api-url " + r.BaseURL()},
			)
		}
		return nil
	},
}
