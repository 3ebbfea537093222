package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/darasa-app/darasa/internal/interfaces/cli/migrate"
	"github.com/darasa-app/darasa/internal/interfaces/cli/server"
	"github.com/darasa-app/darasa/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "darasa",
		Short: "Darasa - e-learning content platform",
		Long:  `Darasa serves gated lesson content with entitlement-aware access control, plus migration and administrative tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
