package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show grid version",
	Long:  `Display the current version of the grid CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("grid version 0.1.0")
	},
}
