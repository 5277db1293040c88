package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"schoolhub_backend/internals/middlewares/logger"
)

type Options struct {
	RequestTimeout time.Duration
	CorsOrigins    []string
	LogTimeZone    string
}

// SetupMiddlewares installs the stack every route shares, outermost first.
func SetupMiddlewares(app *fiber.App, opts Options) {
	app.Use(RequestContext(opts.RequestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware(opts.LogTimeZone))
	app.Use(CorsMiddleware(opts.CorsOrigins))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelDefault,
		// webp from /_img is already compressed
		Next: func(c *fiber.Ctx) bool { return c.Path() == "/_img" },
	}))
	app.Use(etag.New())
}
