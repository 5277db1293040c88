package commands

import (
	"github.com/spf13/cobra"

	database "schoolhub_backend/internals/databases"
	"schoolhub_backend/internals/databases/migrations"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return migrations.AutoMigrate(db.WithContext(cmd.Context()))
		},
	}
}
