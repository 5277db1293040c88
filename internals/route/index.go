// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	pagesRoute "schoolhub_backend/internals/features/home/pages/route"
	imageRoute "schoolhub_backend/internals/features/media/images/route"
	imageService "schoolhub_backend/internals/features/media/images/service"
	dashboardRoute "schoolhub_backend/internals/features/school/dashboard/route"
	examRoute "schoolhub_backend/internals/features/school/exams/route"
	resultRoute "schoolhub_backend/internals/features/school/results/route"
	smsRoute "schoolhub_backend/internals/features/school/sms/route"
	smsService "schoolhub_backend/internals/features/school/sms/service"
	accountRoute "schoolhub_backend/internals/features/users/account/route"
	accountService "schoolhub_backend/internals/features/users/account/service"
	authRoute "schoolhub_backend/internals/features/users/auth/route"
	helperAuth "schoolhub_backend/internals/helpers/auth"
	middlewares "schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps are the collaborators that talk to external systems.
type Deps struct {
	Verifier     helperAuth.Verifier
	UserDeleter  helperAuth.UserDeleter
	SmsSender    smsService.Sender
	ImageFetcher imageService.Fetcher
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg.Env)

	// session is optional everywhere; gates below decide
	app.Use(authMiddleware.LoadSession(deps.Verifier, cfg.Identity.SessionCookie))

	smsSvc := smsService.NewSmsService(db, deps.SmsSender)

	// ===================== PUBLIC PAGES =====================
	log.Info().Msg("mounting public pages")
	pagesRoute.PublicPageRoutes(app, cfg.Identity.SignInURL)
	imageRoute.ImageRoutes(app, imageService.NewImageService(cfg.Images.RemoteHosts, cfg.Images.MaxBytes, deps.ImageFetcher))

	// ===================== ADMIN PAGES =====================
	log.Info().Msg("mounting admin pages")
	pages := app.Group("/admin", authMiddleware.RequireAdminPage(db))
	dashboardRoute.DashboardPageRoutes(pages, db)
	smsRoute.SmsPageRoutes(pages, smsSvc)

	// ===================== API =====================
	log.Info().Msg("mounting api")
	api := app.Group("/api", middlewares.GlobalRateLimiter())
	authRoute.AuthRoutes(api)
	accountRoute.AccountRoutes(api, accountService.NewAccountService(
		db,
		deps.UserDeleter,
		cfg.Identity.RevocationSecret,
		time.Duration(cfg.RevokedSessionTTLDays)*24*time.Hour,
	))

	// ===================== ADMIN API =====================
	log.Info().Msg("mounting admin api")
	admin := api.Group("/admin", authMiddleware.RequireAdminAPI(db))
	examRoute.ExamAdminRoutes(admin, db)
	resultRoute.ResultAdminRoutes(admin, db)
	smsRoute.SmsAdminRoutes(admin, smsSvc)
	dashboardRoute.DashboardAdminRoutes(admin, db)
}
