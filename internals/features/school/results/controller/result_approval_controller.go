package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/results/dto"
	"schoolhub_backend/internals/features/school/results/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type ResultApprovalController struct {
	Service *service.ResultApprovalService
}

func NewResultApprovalController(svc *service.ResultApprovalService) *ResultApprovalController {
	return &ResultApprovalController{Service: svc}
}

// GET /api/admin/results/approval?class_id=&term=
func (ctrl *ResultApprovalController) Get(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)
	if admin == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}

	var q dto.ResultApprovalQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := helper.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	classID := uuid.MustParse(q.ClassID)
	term, _ := constants.ParseTerm(q.Term)

	ctx := c.UserContext()
	resp := dto.ResultApprovalResponse{
		ClassID:    classID,
		Term:       term,
		IsApproved: ctrl.Service.CheckResultApproval(ctx, classID, term, admin.AdminSchoolID),
	}
	if resp.IsApproved {
		// approver details are informational; the flag above is authoritative
		if row, err := ctrl.Service.GetApproval(ctx, classID, term, admin.AdminSchoolID); err == nil {
			resp.ApprovedBy = row.ResultApprovalApprovedBy
			resp.ApprovedAt = row.ResultApprovalApprovedAt
		} else {
			log.Warn().Err(err).Msg("load result approval details")
		}
	}
	return helper.JsonOK(c, "ok", resp)
}

// PUT /api/admin/results/approval
func (ctrl *ResultApprovalController) Put(c *fiber.Ctx) error {
	admin := helperAuth.GetAdmin(c)
	if admin == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}

	var req dto.ResultApprovalUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	term, _ := constants.ParseTerm(req.Term)

	row, err := ctrl.Service.SetResultApproval(c.UserContext(), service.SetApprovalInput{
		ClassID:    uuid.MustParse(req.ClassID),
		Term:       term,
		SchoolID:   admin.AdminSchoolID,
		IsApproved: *req.IsApproved,
		AdminID:    admin.AdminID,
	})
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	case err != nil:
		log.Error().Err(err).Msg("set result approval")
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
	return helper.JsonUpdated(c, "Result approval saved", dto.FromModel(row))
}
