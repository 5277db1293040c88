package controller

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// AuthTest reports who the current session belongs to.
// GET /api/auth/test
func (ac *AuthController) AuthTest(c *fiber.Ctx) error {
	if err := helperAuth.GetSessionError(c); err != nil {
		// already logged by LoadSession
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": constants.MsgAuthFailed})
	}

	userID := helperAuth.GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": constants.MsgUnauthorized})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"userId":  userID,
	})
}
