package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tenauthctl",
	Short: "Tenant role management server and tooling",
	Long:  `tenauthctl runs the tenant role management server and its supporting database and configuration tooling.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
