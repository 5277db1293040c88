// internals/features/media/images/service/image_service.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const (
	MinWidth       = 16
	MaxWidth       = 3840
	DefaultQuality = 75

	// decoded size cap, about 160 MiB of NRGBA
	DefaultMaxPixels = 40_000_000
)

var (
	ErrInvalidURL     = errors.New("url must be an absolute https url")
	ErrHostNotAllowed = errors.New("remote host is not allowed")
	ErrInvalidWidth   = fmt.Errorf("w must be between %d and %d", MinWidth, MaxWidth)
	ErrInvalidQuality = errors.New("q must be between 1 and 100")
	ErrTooLarge       = errors.New("remote image is too large")
	ErrUpstream       = errors.New("remote image could not be fetched")
	ErrNotAnImage     = errors.New("remote file is not a supported image")
)

// Fetcher downloads a remote image. Implementations must not exceed maxBytes.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, maxBytes int) ([]byte, error)
}

type ImageService struct {
	allowed   map[string]struct{}
	maxBytes  int
	maxPixels int
	fetcher   Fetcher
}

func NewImageService(allowedHosts []string, maxBytes int, fetcher Fetcher) *ImageService {
	allowed := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allowed[h] = struct{}{}
		}
	}
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}
	if fetcher == nil {
		fetcher = &AgentFetcher{Timeout: 10 * time.Second}
	}
	return &ImageService{allowed: allowed, maxBytes: maxBytes, maxPixels: DefaultMaxPixels, fetcher: fetcher}
}

// ValidateSource accepts only https URLs on an allow-listed host (exact match, any port is rejected).
func (s *ImageService) ValidateSource(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, ErrInvalidURL
	}
	if u.Scheme != "https" || u.User != nil || u.Port() != "" {
		return nil, ErrInvalidURL
	}
	if _, ok := s.allowed[strings.ToLower(u.Hostname())]; !ok {
		return nil, ErrHostNotAllowed
	}
	return u, nil
}

// ParseParams reads w and q; w "" keeps the original width, q "" is DefaultQuality.
func ParseParams(w, q string) (width, quality int, err error) {
	if w = strings.TrimSpace(w); w != "" {
		width, err = strconv.Atoi(w)
		if err != nil || width < MinWidth || width > MaxWidth {
			return 0, 0, ErrInvalidWidth
		}
	}
	quality = DefaultQuality
	if q = strings.TrimSpace(q); q != "" {
		quality, err = strconv.Atoi(q)
		if err != nil || quality < 1 || quality > 100 {
			return 0, 0, ErrInvalidQuality
		}
	}
	return width, quality, nil
}

// Optimize fetches src, scales it down to width (never up) and encodes WebP.
func (s *ImageService) Optimize(ctx context.Context, src *url.URL, width, quality int) ([]byte, error) {
	raw, err := s.fetcher.Fetch(ctx, src.String(), s.maxBytes)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if cfg.Width*cfg.Height > s.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	if width > 0 && width < img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

/* ==========================
   fiber HTTP client fetcher
========================== */

type AgentFetcher struct {
	Timeout time.Duration
}

func (f *AgentFetcher) Fetch(ctx context.Context, rawURL string, maxBytes int) ([]byte, error) {
	timeout := f.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	a := fiber.Get(rawURL)
	// enforced while reading, not after
	a.MaxResponseBodySize = maxBytes
	a.Set(fiber.HeaderAccept, "image/*")
	a.Set(fiber.HeaderUserAgent, "schoolhub-image-proxy")
	a.Timeout(timeout)
	// redirects could leave the allow-list
	a.MaxRedirectsCount(0)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		if errors.Is(errs[0], fasthttp.ErrBodyTooLarge) {
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, errs[0])
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, code)
	}
	return body, nil
}
