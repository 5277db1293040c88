// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "schoolhub_backend/internals/features/users/auth/model"
)

/* ====================== REVOKED SESSIONS ====================== */

// HashToken keys the revocation table; raw tokens are never stored.
func HashToken(rawToken, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(rawToken))
	return hex.EncodeToString(m.Sum(nil))
}

// RevokeSession stores the token hash until expiresAt. Revoking twice refreshes the expiry.
func RevokeSession(ctx context.Context, db *gorm.DB, rawToken, secret, userID string, expiresAt time.Time) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	row := authModel.RevokedSession{
		TokenHash: HashToken(rawToken, secret),
		UserID:    userID,
		ExpiredAt: expiresAt.UTC(),
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_hash"}},
		DoUpdates: clause.Assignments(map[string]any{"expired_at": row.ExpiredAt, "deleted_at": nil}),
	}).Create(&row).Error
}

// IsSessionRevoked reports whether an active, unexpired revocation exists for the token.
func IsSessionRevoked(ctx context.Context, db *gorm.DB, rawToken, secret string) (bool, error) {
	if strings.TrimSpace(rawToken) == "" {
		return false, nil
	}
	var count int64
	err := db.WithContext(ctx).
		Model(&authModel.RevokedSession{}).
		Where("token_hash = ? AND expired_at > ?", HashToken(rawToken, secret), time.Now().UTC()).
		Count(&count).Error
	return count > 0, err
}

// PurgeExpiredRevocations hard-deletes rows expired before the cutoff.
func PurgeExpiredRevocations(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Unscoped().
		Where("expired_at < ?", before.UTC()).
		Delete(&authModel.RevokedSession{})
	return res.RowsAffected, res.Error
}
