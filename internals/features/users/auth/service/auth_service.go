// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// NewVerifier builds the session verifier for the configured identity provider,
// wrapped with the local revocation check.
func NewVerifier(cfg configs.IdentityConfig, db *gorm.DB) (helperAuth.Verifier, error) {
	var base helperAuth.Verifier

	switch cfg.Provider {
	case "google":
		base = helperAuth.NewGoogleVerifier(cfg.GoogleClientID)
	case "jwt", "":
		v, err := helperAuth.NewJWTVerifier(helperAuth.JWTVerifierOpts{
			Secret:       cfg.JWTSecret,
			PublicKeyPEM: cfg.JWTPublicKey,
			Issuer:       cfg.Issuer,
			Audience:     cfg.Audience,
		})
		if err != nil {
			return nil, err
		}
		base = v
	default:
		return nil, fmt.Errorf("unsupported identity provider %q", cfg.Provider)
	}

	if db == nil {
		return base, nil
	}
	secret := cfg.RevocationSecret
	return helperAuth.WithRevocation(base, func(ctx context.Context, raw string) (bool, error) {
		return authRepo.IsSessionRevoked(ctx, db, raw, secret)
	}), nil
}

// NewUserDeleter returns the provider API client, or a no-op when no API is configured.
func NewUserDeleter(cfg configs.IdentityConfig) helperAuth.UserDeleter {
	if cfg.APIURL == "" {
		log.Warn().Msg("IDENTITY_API_URL not set, provider users will not be deleted")
		return helperAuth.NoopUserDeleter{}
	}
	return &helperAuth.ProviderUserDeleter{
		BaseURL: cfg.APIURL,
		Secret:  cfg.APISecret,
		Timeout: 10 * time.Second,
	}
}
