package main

import (
	"fmt"

	"github.com/Triaksa-Space/bootcamp-site/config"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations for the content store",
		Long: `Apply the embedded goose migrations to DATABASE_URL.

Only the mysql and postgres content stores need migrations; with the redis
store this command does nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.db == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "KV_DRIVER %q has no migrations\n", a.cfg.KVDriver)
				return nil
			}
			if err := config.Migrate(a.db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}
