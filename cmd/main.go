package main

import (
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "bootcamp-site",
		Short:         "Bootcamp marketing site backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serverCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(contentCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Get().Fatal("Command failed", err)
	}
}
