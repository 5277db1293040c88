// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID       uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id"`
	ClassSchoolID uuid.UUID `json:"class_school_id" gorm:"type:uuid;not null;index;column:class_school_id"`
	ClassName     string    `json:"class_name" gorm:"type:varchar(100);not null;column:class_name"`
	ClassLevel    *int      `json:"class_level,omitempty" gorm:"column:class_level"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
