package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-simulator/api"
	"os-simulator/config"
	"os-simulator/internal/schedulers"
	"os-simulator/internal/store"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log") {
				level, _ := logrus.ParseLevel(cfg.LogLevel)
				logrus.SetLevel(level)
			}

			cache, err := api.NewResultsCache(cfg.CacheMaxCost)
			if err != nil {
				return fmt.Errorf("creating results cache: %w", err)
			}
			defer cache.Close()

			st := store.New(cfg.MemoryBlockCount, cfg.MemoryBlockSize, store.Selection{
				Algorithm: schedulers.Algorithm(cfg.DefaultAlgorithm),
				Options:   cfg.Options(),
			})
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, st, cache))

			addr := fmt.Sprintf(":%d", cfg.Port)
			logrus.Infof("listening on %s", addr)
			return app.Listen(addr)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config yaml (default ./config.yaml if present)")
	return cmd
}

// loadConfig reads the file given by --config, or the shared ./config.yaml
// configuration when the flag is unset.
func loadConfig(path string) (*config.SchedulerConfig, error) {
	if path == "" {
		return config.GetSchedulerConfig()
	}
	return config.LoadSchedulerConfig(path)
}
