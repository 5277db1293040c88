package routes

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/configs"
	helper "schoolhub_backend/internals/helpers"
	middlewares "schoolhub_backend/internals/middlewares"
	"schoolhub_backend/internals/views"
)

// NewApp builds the fiber app with JSON, views and the shared middleware stack.
func NewApp(cfg *configs.Config) *fiber.App {
	fcfg := fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Views:                 views.NewEngine(),
		ErrorHandler:          helper.FromFiberError,
		DisableStartupMessage: true,
		BodyLimit:             8 << 20,
	}
	// rate limiters key on c.IP(); only listed proxies may override it
	if len(cfg.TrustedProxies) > 0 {
		fcfg.ProxyHeader = fiber.HeaderXForwardedFor
		fcfg.EnableTrustedProxyCheck = true
		fcfg.TrustedProxies = cfg.TrustedProxies
	}
	app := fiber.New(fcfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	middlewares.SetupMiddlewares(app, middlewares.Options{
		RequestTimeout: cfg.RequestTimeout,
		CorsOrigins:    cfg.CorsOrigins,
		LogTimeZone:    cfg.Log.TimeZone,
	})
	return app
}
