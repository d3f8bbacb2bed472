package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomirror/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gomirror %s (commit %s, built %s)\n",
			version.GetVersion(), version.GitCommit, version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
