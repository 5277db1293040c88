package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolhub_backend/internals/features/school/dashboard/controller"
	"schoolhub_backend/internals/features/school/dashboard/service"
)

// /admin/dashboard
func DashboardPageRoutes(pages fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(service.NewDashboardService(db))
	pages.Get("/dashboard", ctrl.Page)
}

// /api/admin/dashboard/...
func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(service.NewDashboardService(db))
	admin.Get("/dashboard/summary", ctrl.Summary)
}
