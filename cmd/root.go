package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jpsleep/sleepcheck/internal/config"
	"github.com/jpsleep/sleepcheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sleepcheck",
	Short: "Sleep disorder risk screening",
	Long: "SleepCheck — terminal screening tool that estimates sleep disorder risk from " +
		"lifestyle and health measurements, and exports a PDF report of likely conditions.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default sleepcheck.yaml in . or $XDG_CONFIG_HOME/sleepcheck)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SLEEPCHECK_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SLEEPCHECK_DB env var, then store.path from config, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if os.Getenv("SLEEPCHECK_DB") == "" && cfg != nil && cfg.Store.Path != "" {
		return cfg.Store.Path, store.EnsureDir(cfg.Store.Path)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the config named by --config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}
