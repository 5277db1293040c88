package route

import (
	"github.com/gofiber/fiber/v2"

	controller "schoolhub_backend/internals/features/users/account/controller"
	"schoolhub_backend/internals/features/users/account/service"
	middlewares "schoolhub_backend/internals/middlewares"
)

// Base: /api/account
func AccountRoutes(r fiber.Router, svc *service.AccountService) {
	ctrl := controller.NewAccountController(svc)

	account := r.Group("/account")
	account.Post("/delete", middlewares.AccountDeleteRateLimiter(), ctrl.DeleteAccount)
}
