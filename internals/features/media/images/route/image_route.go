package route

import (
	"github.com/gofiber/fiber/v2"

	controller "schoolhub_backend/internals/features/media/images/controller"
	"schoolhub_backend/internals/features/media/images/service"
)

func ImageRoutes(app fiber.Router, svc *service.ImageService) {
	ctrl := controller.NewImageController(svc)
	app.Get("/_img", ctrl.Optimize)
}
