// Package commands holds the cobra CLI: serve (default), migrate and seed.
package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	database "schoolhub_backend/internals/databases"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "schoolhub",
		Short:         "School management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// no subcommand means serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.AddCommand(newServeCommand(), newMigrateCommand(), newSeedCommand())
	return root
}

// bootstrap loads env + config, configures zerolog and opens the database.
func bootstrap() (*configs.Config, *gorm.DB, error) {
	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		return nil, nil, err
	}
	configs.InitLogger(cfg.Log.Level, cfg.Log.Format)

	db, err := database.ConnectDB(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	database.TunePool(db, cfg.DB)
	log.Debug().Str("env", cfg.Env).Msg("bootstrap complete")
	return cfg, db, nil
}
