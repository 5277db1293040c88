// file: internals/features/school/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolhub_backend/internals/features/school/schools/model"
)

// AdminModel grants management rights on exactly one school.
// AdminUserID is the user id issued by the identity provider; it is unique among live rows,
// so a user whose admin row was soft-deleted can be bound again.
type AdminModel struct {
	AdminID       uuid.UUID `json:"admin_id" gorm:"type:uuid;primaryKey;column:admin_id"`
	AdminUserID   string    `json:"admin_user_id" gorm:"type:varchar(128);not null;uniqueIndex:uq_admins_user_id,where:admin_deleted_at IS NULL;column:admin_user_id"`
	AdminSchoolID uuid.UUID `json:"admin_school_id" gorm:"type:uuid;not null;index;column:admin_school_id"`
	AdminFullName string    `json:"admin_full_name" gorm:"type:varchar(150);not null;column:admin_full_name"`
	AdminEmail    *string   `json:"admin_email,omitempty" gorm:"type:varchar(255);column:admin_email"`

	School *schoolModel.SchoolModel `json:"school,omitempty" gorm:"foreignKey:AdminSchoolID;references:SchoolID"`

	AdminCreatedAt time.Time      `json:"admin_created_at" gorm:"column:admin_created_at;autoCreateTime"`
	AdminUpdatedAt time.Time      `json:"admin_updated_at" gorm:"column:admin_updated_at;autoUpdateTime"`
	AdminDeletedAt gorm.DeletedAt `json:"admin_deleted_at,omitempty" gorm:"column:admin_deleted_at;index"`
}

func (AdminModel) TableName() string { return "admins" }

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}

// SchoolName is safe to call when School was not preloaded.
func (m *AdminModel) SchoolName() string {
	if m == nil || m.School == nil {
		return ""
	}
	return m.School.SchoolName
}
