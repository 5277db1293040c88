package route

import (
	"github.com/gofiber/fiber/v2"

	controller "schoolhub_backend/internals/features/school/sms/controller"
	"schoolhub_backend/internals/features/school/sms/service"
	middlewares "schoolhub_backend/internals/middlewares"
)

// /admin/sms/... (pages group, already behind the admin page gate)
func SmsPageRoutes(pages fiber.Router, svc *service.SmsService) {
	ctrl := controller.NewSmsController(svc)
	pages.Get("/sms/test", ctrl.Page)
}

// /api/admin/sms/... (admin API group)
func SmsAdminRoutes(admin fiber.Router, svc *service.SmsService) {
	ctrl := controller.NewSmsController(svc)

	sms := admin.Group("/sms")
	sms.Post("/test", middlewares.SmsTestRateLimiter(), ctrl.Send)
	sms.Get("/logs", ctrl.Logs)
}
