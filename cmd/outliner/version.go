package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("outliner %s\n", version.Version)
		fmt.Printf("  Go:     %s\n", version.GoInfo)
		fmt.Printf("  Commit: %s\n", version.Commit)
		fmt.Printf("  Date:   %s\n", version.BuildDate)
	},
}
