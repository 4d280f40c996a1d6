package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/niteshnanu12/vybe/internal/adapters/repository"
	"github.com/niteshnanu12/vybe/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or list Postgres migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := sqlx.Connect("pgx", cfg.DSN())
		if err != nil {
			return fmt.Errorf("connect %s: %w", cfg.DSNForLog(), err)
		}
		defer db.Close()

		if err := repository.Migrate(cmd.Context(), db.DB, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
