package commands

import (
	"github.com/spf13/cobra"

	database "schoolhub_backend/internals/databases"
	"schoolhub_backend/internals/databases/migrations"
	"schoolhub_backend/internals/seeds"
)

func newSeedCommand() *cobra.Command {
	var (
		adminUserID string
		migrate     bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo school, admin, classes, subjects and exams",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if migrate {
				if err := migrations.AutoMigrate(db.WithContext(cmd.Context())); err != nil {
					return err
				}
			}
			return seeds.RunAllSeeds(cmd.Context(), db, seeds.Options{AdminUserID: adminUserID})
		},
	}
	cmd.Flags().StringVar(&adminUserID, "admin-user-id", "", "identity provider user id for the demo admin")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "run migrations before seeding")
	return cmd
}
