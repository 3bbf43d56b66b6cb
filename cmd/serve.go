package cmd

import (
	"github.com/spf13/cobra"

	"coanalyst/adapters/excel"
	"coanalyst/adapters/sampler"
	"coanalyst/adapters/sqlite"
	"coanalyst/app"
	"coanalyst/internal"
	"coanalyst/internal/api"
	"coanalyst/internal/compute"
	"coanalyst/internal/config"
	"coanalyst/ports"
	"coanalyst/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := internal.NewDefaultLogger()
		session := app.NewSession()
		hub := api.NewSSEHub()
		registry := compute.NewRegistry(sampler.New(cfg.Sampler.Seed))

		var history ports.RunHistory
		if cfg.History.Path != "" {
			store, err := sqlite.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()
			history = store
		}

		service := app.NewAnalysisService(
			logger, session, registry, hub, history, cfg.Progress.Scale)
		server := ui.NewServer(
			cfg, logger, session, service, excel.NewDataReader(), history, hub)
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
