// file: internals/features/school/sms/model/sms_test_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SmsStatusSent   = "sent"
	SmsStatusFailed = "failed"
)

// SmsTestLogModel records every test message sent from the admin SMS page.
type SmsTestLogModel struct {
	SmsTestLogID       uuid.UUID `json:"sms_test_log_id" gorm:"type:uuid;primaryKey;column:sms_test_log_id"`
	SmsTestLogSchoolID uuid.UUID `json:"sms_test_log_school_id" gorm:"type:uuid;not null;index;column:sms_test_log_school_id"`
	SmsTestLogAdminID  uuid.UUID `json:"sms_test_log_admin_id" gorm:"type:uuid;not null;column:sms_test_log_admin_id"`

	SmsTestLogTo          string  `json:"sms_test_log_to" gorm:"type:varchar(20);not null;column:sms_test_log_to"`
	SmsTestLogMessage     string  `json:"sms_test_log_message" gorm:"type:text;not null;column:sms_test_log_message"`
	SmsTestLogStatus      string  `json:"sms_test_log_status" gorm:"type:varchar(10);not null;column:sms_test_log_status"`
	SmsTestLogProviderSID *string `json:"sms_test_log_provider_sid,omitempty" gorm:"type:varchar(64);column:sms_test_log_provider_sid"`
	SmsTestLogError       *string `json:"sms_test_log_error,omitempty" gorm:"type:text;column:sms_test_log_error"`

	SmsTestLogProviderResponse datatypes.JSONMap `json:"sms_test_log_provider_response,omitempty" gorm:"column:sms_test_log_provider_response"`

	SmsTestLogCreatedAt time.Time `json:"sms_test_log_created_at" gorm:"column:sms_test_log_created_at;autoCreateTime;index"`
}

func (SmsTestLogModel) TableName() string { return "sms_test_logs" }

func (m *SmsTestLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.SmsTestLogID == uuid.Nil {
		m.SmsTestLogID = uuid.New()
	}
	return nil
}
