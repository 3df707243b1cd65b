package main

import (
	"os"

	"github.com/aretw0/rewind/internal/cli"
	"github.com/aretw0/rewind/internal/presentation"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order [chicken|beef|bean]",
	Short: "Prepare a hamburger picked by kind",
	Long:  `Looks the kind up on the menu and prepares it. Without an argument it asks on stdin when run from a terminal.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		kind := ""
		if len(args) > 0 {
			kind = args[0]
		}
		interactive := cmd.InOrStdin() == os.Stdin && presentation.IsTerminal(os.Stdin)
		return cli.Order(cfg, kind, interactive, stdio(cmd))
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
}
