// internals/features/school/results/dto/result_approval_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/constants"
	model "schoolhub_backend/internals/features/school/results/model"
)

/* =========================
   REQUEST
   ========================= */

type ResultApprovalQuery struct {
	ClassID string `query:"class_id" validate:"required,uuid"`
	Term    string `query:"term"     validate:"required,term"`
}

type ResultApprovalUpsertRequest struct {
	ClassID    string `json:"class_id"    validate:"required,uuid"`
	Term       string `json:"term"        validate:"required,term"`
	IsApproved *bool  `json:"is_approved" validate:"required"`
}

/* =========================
   RESPONSE
   ========================= */

type ResultApprovalResponse struct {
	ClassID    uuid.UUID      `json:"class_id"`
	Term       constants.Term `json:"term"`
	IsApproved bool           `json:"is_approved"`
	ApprovedBy *uuid.UUID     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time     `json:"approved_at,omitempty"`
}

func FromModel(m *model.ResultApprovalModel) ResultApprovalResponse {
	return ResultApprovalResponse{
		ClassID:    m.ResultApprovalClassID,
		Term:       m.ResultApprovalTerm,
		IsApproved: m.ResultApprovalIsApproved,
		ApprovedBy: m.ResultApprovalApprovedBy,
		ApprovedAt: m.ResultApprovalApprovedAt,
	}
}
