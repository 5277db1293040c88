package route

import (
	"github.com/gofiber/fiber/v2"

	controller "schoolhub_backend/internals/features/home/pages/controller"
)

func PublicPageRoutes(app fiber.Router, signInURL string) {
	ctrl := controller.NewPagesController(signInURL)
	app.Get("/", ctrl.Home)
	app.Get("/sign-in", ctrl.SignIn)
}
