package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"github.com/rs/zerolog/log"
)

const LocRequestID = "reqid"

// RequestContext tags the request with X-Request-ID and bounds it with a
// timeout carried by the user context (handlers pass it down to gorm).
func RequestContext(timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(LocRequestID, id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.Debug().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("url", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("dur", time.Since(start)).
			Msg("request")
		return err
	}
}

func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocRequestID).(string)
	return id
}
