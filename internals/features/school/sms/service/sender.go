// internals/features/school/sms/service/sender.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioClient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"schoolhub_backend/internals/configs"
)

// SendResult is what the provider said about an accepted or rejected message.
type SendResult struct {
	SID      string
	Response map[string]any
}

type Sender interface {
	Send(ctx context.Context, to, body string) (SendResult, error)
	// From is the sender number shown on the test page.
	From() string
	Name() string
}

// NewSender picks Twilio when credentials are configured, the log sender otherwise.
func NewSender(cfg configs.TwilioConfig) Sender {
	if cfg.Enabled() {
		return NewTwilioSender(cfg)
	}
	log.Warn().Msg("TWILIO_* not configured, SMS test messages will only be logged")
	return LogSender{FromNumber: cfg.FromNumber}
}

/* ==========================
   Twilio
========================== */

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioSender struct {
	api        messageCreator
	fromNumber string
}

func NewTwilioSender(cfg configs.TwilioConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{api: client.Api, fromNumber: cfg.FromNumber}
}

func (s *TwilioSender) From() string { return s.fromNumber }
func (s *TwilioSender) Name() string { return "twilio" }

func (s *TwilioSender) Send(ctx context.Context, to, body string) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		res := SendResult{Response: map[string]any{"error": err.Error()}}
		var restErr *twilioClient.TwilioRestError
		if errors.As(err, &restErr) {
			res.Response = map[string]any{
				"code":      restErr.Code,
				"status":    restErr.Status,
				"message":   restErr.Message,
				"more_info": restErr.MoreInfo,
			}
		}
		return res, fmt.Errorf("twilio create message: %w", err)
	}

	res := SendResult{Response: toMap(msg)}
	if msg.Sid != nil {
		res.SID = *msg.Sid
	}
	return res, nil
}

// toMap keeps the provider payload as generic JSON for the log row.
func toMap(v any) map[string]any {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil
	}
	out := map[string]any{}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

/* ==========================
   Log only (development)
========================== */

type LogSender struct {
	FromNumber string
}

func (s LogSender) From() string { return s.FromNumber }
func (s LogSender) Name() string { return "log" }

func (s LogSender) Send(ctx context.Context, to, body string) (SendResult, error) {
	sid := "log-" + uuid.NewString()
	log.Info().Str("sid", sid).Str("to", to).Int("len", len(body)).Msg("sms (log sender)")
	return SendResult{
		SID:      sid,
		Response: map[string]any{"sid": sid, "status": "logged", "to": to},
	}, nil
}
