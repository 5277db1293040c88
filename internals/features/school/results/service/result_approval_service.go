// internals/features/school/results/service/result_approval_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/constants"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	model "schoolhub_backend/internals/features/school/results/model"
)

var ErrClassNotFound = errors.New("class not found in this school")

type ResultApprovalService struct {
	DB *gorm.DB
}

func NewResultApprovalService(db *gorm.DB) *ResultApprovalService {
	return &ResultApprovalService{DB: db}
}

// CheckResultApproval reports whether results for (class, term, school) may be
// released. It fails closed: a missing row, an invalid term or any lookup error
// is false. Errors are logged, never returned.
func (s *ResultApprovalService) CheckResultApproval(ctx context.Context, classID uuid.UUID, term constants.Term, schoolID uuid.UUID) bool {
	if !term.Valid() {
		log.Warn().Str("term", string(term)).Msg("result approval check with invalid term")
		return false
	}

	var rows []model.ResultApprovalModel
	err := s.DB.WithContext(ctx).
		Select("result_approval_is_approved").
		Where("result_approval_class_id = ? AND result_approval_term = ? AND result_approval_school_id = ?",
			classID, term, schoolID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		log.Error().Err(err).
			Str("class_id", classID.String()).
			Str("term", string(term)).
			Str("school_id", schoolID.String()).
			Msg("result approval lookup failed")
		return false
	}
	if len(rows) == 0 {
		return false
	}
	return rows[0].ResultApprovalIsApproved
}

// GetApproval returns the stored row, or an unapproved placeholder when none exists.
func (s *ResultApprovalService) GetApproval(ctx context.Context, classID uuid.UUID, term constants.Term, schoolID uuid.UUID) (*model.ResultApprovalModel, error) {
	var row model.ResultApprovalModel
	err := s.DB.WithContext(ctx).
		Where("result_approval_class_id = ? AND result_approval_term = ? AND result_approval_school_id = ?",
			classID, term, schoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.ResultApprovalModel{
			ResultApprovalClassID:  classID,
			ResultApprovalTerm:     term,
			ResultApprovalSchoolID: schoolID,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

type SetApprovalInput struct {
	ClassID    uuid.UUID
	Term       constants.Term
	SchoolID   uuid.UUID
	IsApproved bool
	AdminID    uuid.UUID
}

// SetResultApproval upserts by (class, term, school). Clearing approval also
// clears who approved it and when.
func (s *ResultApprovalService) SetResultApproval(ctx context.Context, in SetApprovalInput) (*model.ResultApprovalModel, error) {
	if !in.Term.Valid() {
		return nil, fmt.Errorf("invalid term %q", in.Term)
	}

	var out *model.ResultApprovalModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND class_school_id = ?", in.ClassID, in.SchoolID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrClassNotFound
		}

		row := model.ResultApprovalModel{
			ResultApprovalClassID:    in.ClassID,
			ResultApprovalTerm:       in.Term,
			ResultApprovalSchoolID:   in.SchoolID,
			ResultApprovalIsApproved: in.IsApproved,
		}
		if in.IsApproved {
			now := time.Now().UTC()
			by := in.AdminID
			row.ResultApprovalApprovedAt = &now
			row.ResultApprovalApprovedBy = &by
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "result_approval_class_id"},
				{Name: "result_approval_term"},
				{Name: "result_approval_school_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"result_approval_is_approved",
				"result_approval_approved_by",
				"result_approval_approved_at",
				"result_approval_updated_at",
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		var saved model.ResultApprovalModel
		if err := tx.Where("result_approval_class_id = ? AND result_approval_term = ? AND result_approval_school_id = ?",
			in.ClassID, in.Term, in.SchoolID).Take(&saved).Error; err != nil {
			return err
		}
		out = &saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
