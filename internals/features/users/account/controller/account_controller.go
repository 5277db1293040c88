package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/users/account/dto"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AccountDeleter interface {
	DeleteAccount(ctx context.Context, sess *helperAuth.Session, form dto.DeleteAccountForm) (dto.ActionResult, error)
}

type AccountController struct {
	Service AccountDeleter
}

func NewAccountController(svc AccountDeleter) *AccountController {
	return &AccountController{Service: svc}
}

// POST /api/account/delete
func (ctrl *AccountController) DeleteAccount(c *fiber.Ctx) error {
	var form dto.DeleteAccountForm
	if err := c.BodyParser(&form); err != nil {
		log.Error().Err(err).Msg("account delete: parse body")
		return internalError(c)
	}

	var sess *helperAuth.Session
	if s, ok := helperAuth.GetSession(c); ok {
		sess = &s
	}

	res, err := ctrl.Service.DeleteAccount(c.UserContext(), sess, form)
	if err != nil {
		log.Error().Err(err).Str("user_id", helperAuth.GetUserID(c)).Msg("account delete failed")
		return internalError(c)
	}

	if !res.Success {
		msg := strings.TrimSpace(res.Message)
		if msg == "" {
			msg = constants.MsgFailedToDelete
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": msg})
	}
	return c.JSON(fiber.Map{"success": true})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": constants.MsgInternalServerError,
	})
}
