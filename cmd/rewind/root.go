package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rewind/internal/cli"
	"github.com/aretw0/rewind/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rewind",
	Short: "Rewind is an in-memory undo/redo history for editor snapshots",
	Long: `Rewind records immutable snapshots of an edited document on a linear timeline.
Saving after an undo discards the abandoned future.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("render", "", "Output rendering (auto, plain, color, markdown)")
	rootCmd.PersistentFlags().Int("capacity", 0, "Maximum timeline length (0 is unbounded)")
	rootCmd.PersistentFlags().Bool("metrics", false, "Dump Prometheus metrics to stderr after the run")
}

// loadConfig reads the config file and applies any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("render") {
		cfg.Render, _ = flags.GetString("render")
	}
	if flags.Changed("capacity") {
		cfg.Capacity, _ = flags.GetInt("capacity")
		if cfg.Capacity < 0 {
			return cfg, fmt.Errorf("invalid capacity %d: must be >= 0", cfg.Capacity)
		}
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	return cfg, nil
}

func stdio(cmd *cobra.Command) cli.IO {
	return cli.IO{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}
