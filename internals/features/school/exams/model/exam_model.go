// file: internals/features/school/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
)

// ExamModel belongs to one subject and one class within a school, for one term.
type ExamModel struct {
	ExamID        uuid.UUID      `json:"exam_id" gorm:"type:uuid;primaryKey;column:exam_id"`
	ExamSchoolID  uuid.UUID      `json:"exam_school_id" gorm:"type:uuid;not null;uniqueIndex:uq_exams_identity,priority:1;column:exam_school_id"`
	ExamClassID   uuid.UUID      `json:"exam_class_id" gorm:"type:uuid;not null;uniqueIndex:uq_exams_identity,priority:2;column:exam_class_id"`
	ExamSubjectID uuid.UUID      `json:"exam_subject_id" gorm:"type:uuid;not null;uniqueIndex:uq_exams_identity,priority:3;column:exam_subject_id"`
	ExamTerm      constants.Term `json:"exam_term" gorm:"type:varchar(10);not null;uniqueIndex:uq_exams_identity,priority:4;column:exam_term"`
	ExamTitle     string         `json:"exam_title" gorm:"type:varchar(150);not null;uniqueIndex:uq_exams_identity,priority:5;column:exam_title"`
	ExamDate      *time.Time     `json:"exam_date,omitempty" gorm:"column:exam_date"`
	ExamMaxScore  int            `json:"exam_max_score" gorm:"not null;default:100;column:exam_max_score"`

	Class   *classModel.ClassModel     `json:"class,omitempty" gorm:"foreignKey:ExamClassID;references:ClassID"`
	Subject *subjectModel.SubjectModel `json:"subject,omitempty" gorm:"foreignKey:ExamSubjectID;references:SubjectID"`

	ExamCreatedAt time.Time      `json:"exam_created_at" gorm:"column:exam_created_at;autoCreateTime"`
	ExamUpdatedAt time.Time      `json:"exam_updated_at" gorm:"column:exam_updated_at;autoUpdateTime"`
	ExamDeletedAt gorm.DeletedAt `json:"exam_deleted_at,omitempty" gorm:"column:exam_deleted_at;index"`
}

func (ExamModel) TableName() string { return "exams" }

func (m *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamID == uuid.Nil {
		m.ExamID = uuid.New()
	}
	return nil
}
