package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolhub_backend/internals/features/school/sms/model"
)

type SmsTestRequest struct {
	To      string `json:"to"      form:"to"      validate:"required,e164"`
	Message string `json:"message" form:"message" validate:"required,min=1,max=320"`
}

func (r *SmsTestRequest) Normalize() {
	r.To = strings.ReplaceAll(strings.TrimSpace(r.To), " ", "")
	r.Message = strings.TrimSpace(r.Message)
}

type SmsTestLogResponse struct {
	ID               uuid.UUID      `json:"id"`
	To               string         `json:"to"`
	Message          string         `json:"message"`
	Status           string         `json:"status"`
	ProviderSID      *string        `json:"provider_sid,omitempty"`
	Error            *string        `json:"error,omitempty"`
	ProviderResponse map[string]any `json:"provider_response,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func FromModel(m *model.SmsTestLogModel) SmsTestLogResponse {
	return SmsTestLogResponse{
		ID:               m.SmsTestLogID,
		To:               m.SmsTestLogTo,
		Message:          m.SmsTestLogMessage,
		Status:           m.SmsTestLogStatus,
		ProviderSID:      m.SmsTestLogProviderSID,
		Error:            m.SmsTestLogError,
		ProviderResponse: m.SmsTestLogProviderResponse,
		CreatedAt:        m.SmsTestLogCreatedAt,
	}
}

func FromModels(rows []model.SmsTestLogModel) []SmsTestLogResponse {
	out := make([]SmsTestLogResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
