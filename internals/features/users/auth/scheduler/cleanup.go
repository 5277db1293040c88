package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/auth/repository"
)

const cleanupInterval = 24 * time.Hour

// StartRevokedSessionCleanup purges revocations that expired more than ttlDays ago,
// once at start and then every 24h until ctx is done.
func StartRevokedSessionCleanup(ctx context.Context, db *gorm.DB, ttlDays int) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			RunRevokedSessionCleanup(ctx, db, ttlDays, time.Now())

			select {
			case <-ctx.Done():
				log.Info().Msg("revoked session cleanup stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

// RunRevokedSessionCleanup performs a single purge pass relative to now.
func RunRevokedSessionCleanup(ctx context.Context, db *gorm.DB, ttlDays int, now time.Time) int64 {
	deleteBefore := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)

	n, err := repository.PurgeExpiredRevocations(ctx, db, deleteBefore)
	if err != nil {
		log.Error().Err(err).Msg("revoked session cleanup failed")
		return 0
	}
	if n > 0 {
		log.Info().Int64("deleted", n).Msg("revoked session cleanup")
	} else {
		log.Debug().Msg("revoked session cleanup: nothing to delete")
	}
	return n
}
