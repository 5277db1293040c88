// internals/features/school/exams/service/exam_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	database "schoolhub_backend/internals/databases"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	model "schoolhub_backend/internals/features/school/exams/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

var (
	ErrExamNotFound       = errors.New("exam not found")
	ErrDuplicateExam      = errors.New("an exam with this title already exists for the class, subject and term")
	ErrClassNotInSchool   = errors.New("class not found in this school")
	ErrSubjectNotInSchool = errors.New("subject not found in this school")
)

type ExamService struct {
	DB *gorm.DB
}

func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{DB: db}
}

type ListFilter struct {
	SchoolID uuid.UUID
	Term     constants.Term // empty = all
	ClassID  *uuid.UUID
	Offset   int
	Limit    int // 0 = no limit
}

func (s *ExamService) scoped(ctx context.Context, f ListFilter) *gorm.DB {
	q := s.DB.WithContext(ctx).Model(&model.ExamModel{}).Where("exam_school_id = ?", f.SchoolID)
	if f.Term != "" {
		q = q.Where("exam_term = ?", f.Term)
	}
	if f.ClassID != nil {
		q = q.Where("exam_class_id = ?", *f.ClassID)
	}
	return q
}

// List returns one page of exams and the total matching the filter.
func (s *ExamService) List(ctx context.Context, f ListFilter) ([]model.ExamModel, int64, error) {
	var total int64
	if err := s.scoped(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := s.scoped(ctx, f).
		Preload("Class").
		Preload("Subject").
		Order("exam_date IS NULL, exam_date ASC, exam_created_at ASC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}

	var rows []model.ExamModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Create checks that class and subject belong to the exam's school first.
func (s *ExamService) Create(ctx context.Context, exam *model.ExamModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND class_school_id = ?", exam.ExamClassID, exam.ExamSchoolID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrClassNotInSchool
		}
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ? AND subject_school_id = ?", exam.ExamSubjectID, exam.ExamSchoolID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrSubjectNotInSchool
		}

		if err := tx.Create(exam).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return ErrDuplicateExam
			}
			return fmt.Errorf("create exam: %w", err)
		}
		return tx.Preload("Class").Preload("Subject").First(exam, "exam_id = ?", exam.ExamID).Error
	})
}

// Delete soft-deletes an exam of the school.
func (s *ExamService) Delete(ctx context.Context, schoolID, examID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("exam_id = ? AND exam_school_id = ?", examID, schoolID).
		Delete(&model.ExamModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExamNotFound
	}
	return nil
}
