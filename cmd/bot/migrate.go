package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/herald-bot/internal/config"
	"github.com/KirkDiggler/herald-bot/internal/storage/migrations"
	"github.com/KirkDiggler/herald-bot/internal/storage/sqlite"
)

func newMigrateCmd() *cobra.Command {
	var databaseURL, databasePath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply pending schema migrations to Postgres when DATABASE_URL is set,
otherwise to the SQLite file at DATABASE_PATH.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if databaseURL == "" {
				databaseURL = cfg.Database.URL
			}
			if databasePath == "" {
				databasePath = cfg.Database.Path
			}

			var status *migrations.Status
			target := "postgres"
			if databaseURL != "" {
				status, err = migrations.UpPostgres(databaseURL)
			} else {
				target = "sqlite " + databasePath
				db, openErr := sqlite.Open(cmd.Context(), databasePath)
				if openErr != nil {
					return openErr
				}
				defer db.Close()
				status, err = migrations.UpSQLite(db)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !status.Changed {
				fmt.Fprintf(out, "%s schema already at version %d\n", target, status.Version)
				return nil
			}
			fmt.Fprintf(out, "%s schema migrated to version %d\n", target, status.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres URL (overrides DATABASE_URL)")
	cmd.Flags().StringVar(&databasePath, "database-path", "", "SQLite file (overrides DATABASE_PATH)")

	return cmd
}
