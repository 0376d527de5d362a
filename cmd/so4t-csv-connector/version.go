package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of so4t-csv-connector",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("so4t-csv-connector %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
