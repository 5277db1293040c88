// internals/middlewares/auth/session_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// LoadSession resolves the provider session when a token is present.
// It never rejects: gates further down decide what an absent session means.
func LoadSession(verifier helperAuth.Verifier, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helperAuth.ExtractSessionToken(c, cookieName)
		if raw == "" {
			return c.Next()
		}

		s, err := verifier.Verify(c.UserContext(), raw)
		switch {
		case err == nil:
			c.Locals(helperAuth.LocSession, s)
			c.Locals(helperAuth.LocUserID, s.UserID)
		case errors.Is(err, helperAuth.ErrNoSession):
			log.Debug().Err(err).Str("path", c.Path()).Msg("session rejected")
		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("session verification failed")
			c.Locals(helperAuth.LocSessionError, err)
		}
		return c.Next()
	}
}
