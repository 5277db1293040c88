// internals/features/users/account/service/account_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	adminRepo "schoolhub_backend/internals/features/school/admins/repository"
	"schoolhub_backend/internals/features/users/account/dto"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

const (
	MsgConfirmDelete   = "Please type DELETE to confirm"
	MsgAccountNotFound = "Account not found"
)

type AccountService struct {
	DB               *gorm.DB
	Deleter          helperAuth.UserDeleter
	RevocationSecret string
	// Used as the revocation expiry when the token carries no exp.
	FallbackTTL time.Duration
}

func NewAccountService(db *gorm.DB, deleter helperAuth.UserDeleter, revocationSecret string, fallbackTTL time.Duration) *AccountService {
	if deleter == nil {
		deleter = helperAuth.NoopUserDeleter{}
	}
	if fallbackTTL <= 0 {
		fallbackTTL = 7 * 24 * time.Hour
	}
	return &AccountService{DB: db, Deleter: deleter, RevocationSecret: revocationSecret, FallbackTTL: fallbackTTL}
}

// DeleteAccount removes the signed-in admin. Domain failures come back as an
// ActionResult; the error return is reserved for unexpected failures.
func (s *AccountService) DeleteAccount(ctx context.Context, sess *helperAuth.Session, form dto.DeleteAccountForm) (dto.ActionResult, error) {
	if sess == nil || sess.UserID == "" {
		return dto.Fail(constants.MsgNotAuthorized), nil
	}
	if !form.Confirmed() {
		return dto.Fail(MsgConfirmDelete), nil
	}

	expiresAt := sess.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(s.FallbackTTL)
	}

	var result dto.ActionResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := adminRepo.FindAdminByUserID(ctx, tx, sess.UserID); err != nil {
			if errors.Is(err, adminRepo.ErrAdminNotFound) {
				result = dto.Fail(MsgAccountNotFound)
				return nil
			}
			return fmt.Errorf("find admin: %w", err)
		}

		n, err := adminRepo.SoftDeleteAdminByUserID(ctx, tx, sess.UserID)
		if err != nil {
			return fmt.Errorf("delete admin: %w", err)
		}
		if n == 0 {
			// lost a race with a concurrent delete
			result = dto.Fail(MsgAccountNotFound)
			return nil
		}

		if err := authRepo.RevokeSession(ctx, tx, sess.Token, s.RevocationSecret, sess.UserID, expiresAt); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}

		// last, so a provider failure rolls back the local delete
		if err := s.Deleter.DeleteUser(ctx, sess.UserID); err != nil {
			return err
		}

		result = dto.OK()
		return nil
	})
	if err != nil {
		return dto.ActionResult{}, err
	}

	if result.Success {
		log.Info().Str("user_id", sess.UserID).Msg("account deleted")
	}
	return result, nil
}
