package main

import (
	"os"

	"github.com/spf13/cobra"

	"aquameter/internal/interfaces/cli/migrate"
	"aquameter/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aquameter",
		Short: "Aquameter - utility meter reading backend",
		Long:  `Aquameter is a multi-tenant backend for condominium utility meter collection, with photo recognition, billing and dashboards.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
