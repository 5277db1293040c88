// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	adminRepo "schoolhub_backend/internals/features/school/admins/repository"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

const (
	SignInPath = "/sign-in"
	HomePath   = "/"
)

type gateOutcome int

const (
	gateNoSession gateOutcome = iota
	gateNotAdmin
	gateAdmin
	gateFailed
)

// resolveAdmin settles the gate in one pass: no session, not an admin, or admin.
func resolveAdmin(c *fiber.Ctx, db *gorm.DB) gateOutcome {
	userID := helperAuth.GetUserID(c)
	if userID == "" {
		return gateNoSession
	}

	admin, err := adminRepo.FindAdminByUserID(c.UserContext(), db, userID)
	if errors.Is(err, adminRepo.ErrAdminNotFound) {
		return gateNotAdmin
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("admin lookup failed")
		return gateFailed
	}

	c.Locals(helperAuth.LocAdmin, admin)
	return gateAdmin
}

// RequireAdminPage guards server-rendered admin pages.
func RequireAdminPage(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch resolveAdmin(c, db) {
		case gateNoSession:
			return c.Redirect(SignInPath, fiber.StatusSeeOther)
		case gateNotAdmin:
			return c.Redirect(HomePath, fiber.StatusSeeOther)
		case gateFailed:
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternalServerError)
		}
		return c.Next()
	}
}

// RequireAdminAPI guards JSON admin endpoints.
func RequireAdminAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch resolveAdmin(c, db) {
		case gateNoSession:
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
		case gateNotAdmin:
			return helper.JsonError(c, fiber.StatusForbidden, constants.MsgForbidden)
		case gateFailed:
			return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
		}
		return c.Next()
	}
}
