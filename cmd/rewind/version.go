package main

import (
	"fmt"

	"github.com/aretw0/rewind"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rewind",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rewind version %s\n", rewind.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
