package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/dashboard/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// GET /admin/dashboard
func (ctrl *DashboardController) Page(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	summary, err := ctrl.Service.Summary(c.UserContext(), admin.AdminSchoolID)
	if err != nil {
		log.Error().Err(err).Msg("dashboard summary")
		return fiber.NewError(fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":      "Dashboard",
		"SchoolName": admin.SchoolName(),
		"AdminName":  admin.AdminFullName,
		"Summary":    summary,
	}, "layouts/main")
}

// GET /api/admin/dashboard/summary
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)

	summary, err := ctrl.Service.Summary(c.UserContext(), admin.AdminSchoolID)
	if err != nil {
		log.Error().Err(err).Msg("dashboard summary")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"school_id":   admin.AdminSchoolID,
		"school_name": admin.SchoolName(),
		"summary":     summary,
	})
}
