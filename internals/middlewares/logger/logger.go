package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware writes one access line per request.
func LoggerMiddleware(timeZone string) fiber.Handler {
	if timeZone == "" {
		timeZone = "UTC"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   timeZone,
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency} - ${respHeader:X-Request-ID}\n",
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	})
}
