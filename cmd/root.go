package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rishikadhanawade/pg-az900-quest/internal/app"
	"github.com/rishikadhanawade/pg-az900-quest/internal/config"
	"github.com/rishikadhanawade/pg-az900-quest/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "az900-quest",
	Short: "Terminal practice player for the AZ-900 exam",
	Long:  "AZ-900 Quest: filter a question bank by set, domain, and difficulty, run a quiz, and review where you stand.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("data", "", "Dataset CSV path or URL (overrides config and "+config.EnvData+")")
	rootCmd.PersistentFlags().String("theme", "", "Color theme: dark or light")
	rootCmd.PersistentFlags().Bool("shuffle", false, "Shuffle question order at session start")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig merges defaults, config file, environment, and flags, in
// ascending precedence.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	// A .env in the working directory feeds the environment overrides.
	_ = godotenv.Load()

	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	switch {
	case path != "":
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	default:
		if _, err := os.Stat(config.DefaultFile); err == nil {
			loaded, err := config.Load(config.DefaultFile)
			if err != nil {
				return config.Config{}, err
			}
			cfg = loaded
		}
	}

	config.ApplyEnv(&cfg)

	if cmd.Flags().Changed("data") {
		cfg.Data, _ = cmd.Flags().GetString("data")
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme, _ = cmd.Flags().GetString("theme")
	}
	if cmd.Flags().Changed("shuffle") {
		cfg.Shuffle, _ = cmd.Flags().GetBool("shuffle")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return err
	}

	return app.Run(app.Options{Config: cfg, Theme: th})
}
