// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "schoolhub_backend/internals/features/users/auth/controller"
)

// Base: /api/auth
func AuthRoutes(r fiber.Router) {
	authController := controller.NewAuthController()

	baseAuth := r.Group("/auth")
	baseAuth.Get("/test", authController.AuthTest)
}
