package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/views"
)

func render(t *testing.T, app *fiber.App, path string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

func TestPublicPages(t *testing.T) {
	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	ctrl := NewPagesController("https://accounts.school.test/sign-in")
	app.Get("/", ctrl.Home)
	app.Get("/sign-in", ctrl.SignIn)

	assert.Contains(t, render(t, app, "/"), `href="/sign-in"`)
	assert.Contains(t, render(t, app, "/sign-in"), "https://accounts.school.test/sign-in")
}
