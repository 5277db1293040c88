package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	examModel "schoolhub_backend/internals/features/school/exams/model"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

type TermCount struct {
	Term  constants.Term `json:"term"`
	Count int64          `json:"count"`
}

type Summary struct {
	Classes         int64       `json:"classes"`
	Subjects        int64       `json:"subjects"`
	Exams           int64       `json:"exams"`
	ExamsPerTerm    []TermCount `json:"exams_per_term"`
	ApprovedResults int64       `json:"approved_results"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Summary counts the school's records; every term is listed, zero or not.
func (s *DashboardService) Summary(ctx context.Context, schoolID uuid.UUID) (*Summary, error) {
	db := s.DB.WithContext(ctx)
	out := &Summary{}

	if err := db.Model(&classModel.ClassModel{}).Where("class_school_id = ?", schoolID).Count(&out.Classes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&subjectModel.SubjectModel{}).Where("subject_school_id = ?", schoolID).Count(&out.Subjects).Error; err != nil {
		return nil, err
	}

	var perTerm []struct {
		Term  constants.Term `gorm:"column:exam_term"`
		Count int64          `gorm:"column:n"`
	}
	if err := db.Model(&examModel.ExamModel{}).
		Select("exam_term, COUNT(*) AS n").
		Where("exam_school_id = ?", schoolID).
		Group("exam_term").
		Scan(&perTerm).Error; err != nil {
		return nil, err
	}
	counts := make(map[constants.Term]int64, len(perTerm))
	for _, r := range perTerm {
		counts[r.Term] = r.Count
		out.Exams += r.Count
	}
	for _, t := range constants.AllTerms {
		out.ExamsPerTerm = append(out.ExamsPerTerm, TermCount{Term: t, Count: counts[t]})
	}

	if err := db.Model(&resultModel.ResultApprovalModel{}).
		Where("result_approval_school_id = ? AND result_approval_is_approved = ?", schoolID, true).
		Count(&out.ApprovedResults).Error; err != nil {
		return nil, err
	}
	return out, nil
}
