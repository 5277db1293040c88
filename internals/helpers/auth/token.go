package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ExtractSessionToken reads "Authorization: Bearer ..." first, then the provider session cookie.
func ExtractSessionToken(c *fiber.Ctx, cookieName string) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	if cookieName == "" {
		return ""
	}
	return strings.TrimSpace(c.Cookies(cookieName))
}
