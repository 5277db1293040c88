package controller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/users/account/dto"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type stubService struct {
	res       dto.ActionResult
	err       error
	gotForm   dto.DeleteAccountForm
	gotUser   string
	wasCalled bool
}

func (s *stubService) DeleteAccount(ctx context.Context, sess *helperAuth.Session, form dto.DeleteAccountForm) (dto.ActionResult, error) {
	s.wasCalled = true
	s.gotForm = form
	if sess != nil {
		s.gotUser = sess.UserID
	}
	return s.res, s.err
}

func post(t *testing.T, svc AccountDeleter, contentType, body string, signedIn bool) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if signedIn {
			c.Locals(helperAuth.LocSession, helperAuth.Session{UserID: "user_1", Token: "tok"})
		}
		return c.Next()
	})
	app.Post("/api/account/delete", NewAccountController(svc).DeleteAccount)

	req := httptest.NewRequest(fiber.MethodPost, "/api/account/delete", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestDeleteAccount_Success(t *testing.T) {
	svc := &stubService{res: dto.OK()}
	code, body := post(t, svc, fiber.MIMEApplicationForm, "confirmation=DELETE", true)

	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"success":true}`, body)
	assert.Equal(t, "DELETE", svc.gotForm.Confirmation)
	assert.Equal(t, "user_1", svc.gotUser)
}

func TestDeleteAccount_DomainFailureIs400(t *testing.T) {
	svc := &stubService{res: dto.Fail("Not authorized")}
	code, body := post(t, svc, fiber.MIMEApplicationForm, "confirmation=DELETE", false)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.JSONEq(t, `{"success":false,"message":"Not authorized"}`, body)
	assert.Empty(t, svc.gotUser)

	svc = &stubService{res: dto.ActionResult{Success: false}}
	code, body = post(t, svc, fiber.MIMEApplicationJSON, `{"confirmation":"nope"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to delete"}`, body)
}

func TestDeleteAccount_UnexpectedErrorIs500(t *testing.T) {
	svc := &stubService{err: errors.New("tx aborted: disk full")}
	code, body := post(t, svc, fiber.MIMEApplicationForm, "confirmation=DELETE", true)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, body)
}

func TestDeleteAccount_MalformedBodyIs500(t *testing.T) {
	svc := &stubService{res: dto.OK()}
	code, body := post(t, svc, fiber.MIMEApplicationJSON, `{"confirmation":`, true)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, body)
	assert.False(t, svc.wasCalled)
}
