package seeds

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/seeds/demo"
)

type Options struct {
	// Replaces the demo admin's user id so a real provider account can sign in.
	AdminUserID string
}

func RunAllSeeds(ctx context.Context, db *gorm.DB, opts Options) error {
	tenant, err := demo.LoadTenant()
	if err != nil {
		return err
	}
	if err := demo.SeedTenant(ctx, db, tenant, opts.AdminUserID); err != nil {
		return err
	}
	log.Info().Msg("seeding finished")
	return nil
}
