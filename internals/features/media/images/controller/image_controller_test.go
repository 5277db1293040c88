package controller

import (
	"bytes"
	"context"
	"image/color"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/media/images/service"
)

type fakeFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string, maxBytes int) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func newImageApp(f service.Fetcher) *fiber.App {
	svc := service.NewImageService([]string{"utfs.io"}, 0, f)
	app := fiber.New()
	app.Get("/_img", NewImageController(svc).Optimize)
	return app
}

func imgURL(src, w, q string) string {
	v := url.Values{}
	v.Set("url", src)
	if w != "" {
		v.Set("w", w)
	}
	if q != "" {
		v.Set("q", q)
	}
	return "/_img?" + v.Encode()
}

func TestOptimize_Success(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(64, 64, color.White), imaging.PNG))
	app := newImageApp(&fakeFetcher{body: buf.Bytes()})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, imgURL("https://utfs.io/f/a.png", "32", "60"), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/webp", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "public, max-age=86400", resp.Header.Get(fiber.HeaderCacheControl))
}

func TestOptimize_Rejections(t *testing.T) {
	f := &fakeFetcher{}
	app := newImageApp(f)

	cases := []struct {
		path string
		code int
	}{
		{imgURL("https://evil.example.com/a.png", "", ""), fiber.StatusBadRequest},
		{imgURL("http://utfs.io/a.png", "", ""), fiber.StatusBadRequest},
		{imgURL("https://utfs.io/a.png", "8", ""), fiber.StatusBadRequest},
		{imgURL("https://utfs.io/a.png", "", "500"), fiber.StatusBadRequest},
		{"/_img", fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode, tc.path)
	}
	assert.Zero(t, f.calls)
}

func TestOptimize_UpstreamErrors(t *testing.T) {
	cases := []struct {
		fetcher *fakeFetcher
		code    int
	}{
		{&fakeFetcher{err: service.ErrUpstream}, fiber.StatusBadGateway},
		{&fakeFetcher{err: service.ErrTooLarge}, fiber.StatusRequestEntityTooLarge},
		{&fakeFetcher{body: []byte("not an image")}, fiber.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		app := newImageApp(tc.fetcher)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, imgURL("https://utfs.io/a.png", "", ""), nil))
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode)
	}
}
