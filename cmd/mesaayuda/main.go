package main

import (
	"os"

	"github.com/spf13/cobra"

	"mesaayuda/internal/interfaces/cli/migrate"
	"mesaayuda/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mesaayuda",
		Short: "MesaAyuda - phone support ticketing backend",
		Long:  `MesaAyuda is the backend for a phone support help desk, with ticket management, access control, and migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
