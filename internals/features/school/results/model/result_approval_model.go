// file: internals/features/school/results/model/result_approval_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
)

// ResultApprovalModel gates the release of results for one (class, term, school).
// The unique index keeps at most one row per triple.
type ResultApprovalModel struct {
	ResultApprovalID         uuid.UUID      `json:"result_approval_id" gorm:"type:uuid;primaryKey;column:result_approval_id"`
	ResultApprovalClassID    uuid.UUID      `json:"result_approval_class_id" gorm:"type:uuid;not null;uniqueIndex:uq_result_approvals_key,priority:1;column:result_approval_class_id"`
	ResultApprovalTerm       constants.Term `json:"result_approval_term" gorm:"type:varchar(10);not null;uniqueIndex:uq_result_approvals_key,priority:2;column:result_approval_term"`
	ResultApprovalSchoolID   uuid.UUID      `json:"result_approval_school_id" gorm:"type:uuid;not null;uniqueIndex:uq_result_approvals_key,priority:3;column:result_approval_school_id"`
	ResultApprovalIsApproved bool           `json:"result_approval_is_approved" gorm:"not null;default:false;column:result_approval_is_approved"`

	ResultApprovalApprovedBy *uuid.UUID `json:"result_approval_approved_by,omitempty" gorm:"type:uuid;column:result_approval_approved_by"`
	ResultApprovalApprovedAt *time.Time `json:"result_approval_approved_at,omitempty" gorm:"column:result_approval_approved_at"`

	ResultApprovalCreatedAt time.Time `json:"result_approval_created_at" gorm:"column:result_approval_created_at;autoCreateTime"`
	ResultApprovalUpdatedAt time.Time `json:"result_approval_updated_at" gorm:"column:result_approval_updated_at;autoUpdateTime"`
}

func (ResultApprovalModel) TableName() string { return "result_approvals" }

func (m *ResultApprovalModel) BeforeCreate(tx *gorm.DB) error {
	if m.ResultApprovalID == uuid.Nil {
		m.ResultApprovalID = uuid.New()
	}
	return nil
}
