package main

import (
	"github.com/aretw0/rewind/internal/cli"
	"github.com/spf13/cobra"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [scenario.yaml]",
	Short: "Replay a scripted editing session",
	Long: `Seeds an editor, replays edit/save/undo/redo steps and reports each titled step.
Without a scenario file the built-in walkthrough is played.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return cli.Play(cfg, path, stdio(cmd))
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	// Make 'play' the default if no command is provided.
	rootCmd.RunE = playCmd.RunE
}
