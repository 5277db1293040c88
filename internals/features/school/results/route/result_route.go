package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolhub_backend/internals/features/school/results/controller"
	"schoolhub_backend/internals/features/school/results/service"
)

// Mounted under the admin API group: /api/admin/results/...
func ResultAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResultApprovalController(service.NewResultApprovalService(db))

	results := admin.Group("/results")
	results.Get("/approval", ctrl.Get)
	results.Put("/approval", ctrl.Put)
}
