package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/sms/dto"
	"schoolhub_backend/internals/features/school/sms/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type SmsController struct {
	Service *service.SmsService
}

func NewSmsController(svc *service.SmsService) *SmsController {
	return &SmsController{Service: svc}
}

// GET /admin/sms/test
func (ctrl *SmsController) Page(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	logs, err := ctrl.Service.LatestLogs(c.UserContext(), admin, 10)
	if err != nil {
		// the page still works without history
		log.Error().Err(err).Msg("load sms test logs")
	}

	return c.Render("admin/sms_test", fiber.Map{
		"Title":      "SMS test",
		"SchoolName": admin.SchoolName(),
		"AdminName":  admin.AdminFullName,
		"FromNumber": ctrl.Service.Sender.From(),
		"Provider":   ctrl.Service.Sender.Name(),
		"Logs":       dto.FromModels(logs),
	}, "layouts/main")
}

// POST /api/admin/sms/test
func (ctrl *SmsController) Send(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	var req dto.SmsTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row, err := ctrl.Service.SendTest(c.UserContext(), admin, req.To, req.Message)
	switch {
	case errors.Is(err, service.ErrProviderFailed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success":    false,
			"message":    "SMS provider rejected the message",
			"error_code": "PROVIDER_ERROR",
			"data":       dto.FromModel(row),
		})
	case err != nil:
		log.Error().Err(err).Msg("sms test send")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonCreated(c, "Message sent", dto.FromModel(row))
}

// GET /api/admin/sms/logs
func (ctrl *SmsController) Logs(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	rows, err := ctrl.Service.LatestLogs(c.UserContext(), admin, service.LatestLogsLimit)
	if err != nil {
		log.Error().Err(err).Msg("list sms test logs")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}
