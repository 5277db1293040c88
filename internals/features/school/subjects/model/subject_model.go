// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id"`
	SubjectSchoolID uuid.UUID `json:"subject_school_id" gorm:"type:uuid;not null;index;column:subject_school_id"`
	SubjectName     string    `json:"subject_name" gorm:"type:varchar(120);not null;column:subject_name"`
	SubjectCode     *string   `json:"subject_code,omitempty" gorm:"type:varchar(40);column:subject_code"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at,omitempty" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
