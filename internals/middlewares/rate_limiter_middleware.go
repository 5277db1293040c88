package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "schoolhub_backend/internals/helpers"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every API endpoint
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(100, 1*time.Minute, "Too many requests. Please try again later.")
}

// Account deletion is irreversible, keep it tight
func AccountDeleteRateLimiter() fiber.Handler {
	return ipLimiter(3, 10*time.Minute, "Too many account deletion attempts. Please wait a few minutes.")
}

// Every test send costs money at the SMS provider
func SmsTestRateLimiter() fiber.Handler {
	return ipLimiter(5, 1*time.Minute, "Too many test messages. Please wait a minute.")
}
