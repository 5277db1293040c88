// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel is the tenant boundary: admins, classes, subjects and exams hang off it.
type SchoolModel struct {
	SchoolID      uuid.UUID `json:"school_id" gorm:"type:uuid;primaryKey;column:school_id"`
	SchoolName    string    `json:"school_name" gorm:"type:varchar(150);not null;column:school_name"`
	SchoolSlug    string    `json:"school_slug" gorm:"type:varchar(80);not null;uniqueIndex:uq_schools_slug;column:school_slug"`
	SchoolAddress *string   `json:"school_address,omitempty" gorm:"type:text;column:school_address"`
	SchoolPhone   *string   `json:"school_phone,omitempty" gorm:"type:varchar(32);column:school_phone"`

	SchoolCreatedAt time.Time      `json:"school_created_at" gorm:"column:school_created_at;autoCreateTime"`
	SchoolUpdatedAt time.Time      `json:"school_updated_at" gorm:"column:school_updated_at;autoUpdateTime"`
	SchoolDeletedAt gorm.DeletedAt `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at;index"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
