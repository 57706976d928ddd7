// Root command for the pantry CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cookpedia/pantry/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagAPIBase   string
	flagJSON      bool
)

// cfg holds the effective configuration, resolved by PersistentPreRunE so
// all subcommands can use it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "Pantry is a faceted-search catalog for shared recipes",
	Version: Version,
	Long: `Pantry ingests loosely typed recipe records from a content service,
normalizes them into a consistent catalog, and searches them by free text,
ingredient inclusion, and category facets.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEffectiveConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .pantry)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the creation journal (default: .pantry)")
	rootCmd.PersistentFlags().StringVar(&flagAPIBase, "api-base", "", "content service base URL (overrides config and PANTRY_API_BASE)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEffectiveConfig resolves configuration with precedence:
// flag > environment (including .env) > config.yaml > default.
func loadEffectiveConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()

	v, err := loadConfig(resolveConfigDir())
	if err != nil {
		return err
	}

	cfg.APIBase = v.GetString(cfgKeyAPIBase)
	cfg.DataDir = v.GetString(cfgKeyDataDir)

	if env := os.Getenv("PANTRY_API_BASE"); env != "" {
		cfg.APIBase = env
	}
	if flagAPIBase != "" {
		cfg.APIBase = flagAPIBase
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = resolveConfigDir()
	}

	return cfg.Validate()
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("PANTRY_CONFIG_DIR"); v != "" {
		return v
	}
	return ".pantry"
}
