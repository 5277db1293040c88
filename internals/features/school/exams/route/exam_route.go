package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolhub_backend/internals/features/school/exams/controller"
	"schoolhub_backend/internals/features/school/exams/service"
)

// Mounted under the admin API group: /api/admin/exams/...
func ExamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamController(service.NewExamService(db))

	exams := admin.Group("/exams")
	exams.Get("/", ctrl.List)
	exams.Get("/export", ctrl.Export)
	exams.Post("/", ctrl.Create)
	exams.Post("/import", ctrl.Import)
	exams.Delete("/:id", ctrl.Delete)
}
