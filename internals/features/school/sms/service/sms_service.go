// internals/features/school/sms/service/sms_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	adminModel "schoolhub_backend/internals/features/school/admins/model"
	model "schoolhub_backend/internals/features/school/sms/model"
)

const LatestLogsLimit = 20

var ErrProviderFailed = errors.New("sms provider rejected the message")

type SmsService struct {
	DB     *gorm.DB
	Sender Sender
}

func NewSmsService(db *gorm.DB, sender Sender) *SmsService {
	return &SmsService{DB: db, Sender: sender}
}

// SendTest sends one message and records the attempt. On provider failure the
// failed row is still stored and returned together with ErrProviderFailed.
func (s *SmsService) SendTest(ctx context.Context, admin *adminModel.AdminModel, to, message string) (*model.SmsTestLogModel, error) {
	row := &model.SmsTestLogModel{
		SmsTestLogSchoolID: admin.AdminSchoolID,
		SmsTestLogAdminID:  admin.AdminID,
		SmsTestLogTo:       strings.TrimSpace(to),
		SmsTestLogMessage:  message,
		SmsTestLogStatus:   model.SmsStatusSent,
	}

	res, sendErr := s.Sender.Send(ctx, row.SmsTestLogTo, message)
	if res.SID != "" {
		sid := res.SID
		row.SmsTestLogProviderSID = &sid
	}
	if res.Response != nil {
		row.SmsTestLogProviderResponse = datatypes.JSONMap(res.Response)
	}
	if sendErr != nil {
		msg := sendErr.Error()
		row.SmsTestLogStatus = model.SmsStatusFailed
		row.SmsTestLogError = &msg
		log.Warn().Err(sendErr).Str("sender", s.Sender.Name()).Str("to", row.SmsTestLogTo).Msg("sms test send failed")
	}

	// the attempt is recorded even when the request context is already done
	if err := s.DB.WithContext(context.WithoutCancel(ctx)).Create(row).Error; err != nil {
		return nil, fmt.Errorf("store sms test log: %w", err)
	}

	if sendErr != nil {
		return row, fmt.Errorf("%w: %v", ErrProviderFailed, sendErr)
	}
	return row, nil
}

// LatestLogs returns the newest test sends of a school, newest first.
func (s *SmsService) LatestLogs(ctx context.Context, admin *adminModel.AdminModel, limit int) ([]model.SmsTestLogModel, error) {
	if limit <= 0 || limit > LatestLogsLimit {
		limit = LatestLogsLimit
	}
	var rows []model.SmsTestLogModel
	err := s.DB.WithContext(ctx).
		Where("sms_test_log_school_id = ?", admin.AdminSchoolID).
		Order("sms_test_log_created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
