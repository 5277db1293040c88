package helper

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// UserDeleter removes a user from the hosted identity provider.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

// ProviderUserDeleter calls DELETE {BaseURL}/users/{id} on the provider's backend API.
type ProviderUserDeleter struct {
	BaseURL string
	Secret  string
	Timeout time.Duration
}

func (d *ProviderUserDeleter) DeleteUser(ctx context.Context, userID string) error {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	a := fiber.Delete(d.BaseURL + "/users/" + url.PathEscape(userID))
	a.Set(fiber.HeaderAuthorization, "Bearer "+d.Secret)
	a.Timeout(timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("identity provider delete user: %w", errs[0])
	}
	switch {
	case code == fiber.StatusNotFound:
		// already gone at the provider
		log.Warn().Str("user_id", userID).Msg("identity provider user not found on delete")
		return nil
	case code >= 300:
		return fmt.Errorf("identity provider delete user: status %d: %s", code, string(body))
	}
	return nil
}

// NoopUserDeleter is used when no provider API is configured.
type NoopUserDeleter struct{}

func (NoopUserDeleter) DeleteUser(ctx context.Context, userID string) error {
	log.Debug().Str("user_id", userID).Msg("identity provider API not configured, skipping user delete")
	return nil
}
