// file: internals/helpers/auth/locals.go
package helper

import (
	"github.com/gofiber/fiber/v2"

	adminModel "schoolhub_backend/internals/features/school/admins/model"
)

/* ============================================
   Locals Keys (middleware sets these)
   ============================================ */

const (
	LocUserID       = "user_id"       // string, identity provider user id
	LocSession      = "session"       // Session
	LocSessionError = "session_error" // error, internal verification failure only
	LocAdmin        = "admin"         // *adminModel.AdminModel
)

// GetSession returns the verified session, if any.
func GetSession(c *fiber.Ctx) (Session, bool) {
	s, ok := c.Locals(LocSession).(Session)
	if !ok || s.UserID == "" {
		return Session{}, false
	}
	return s, true
}

// GetSessionError returns the internal failure recorded while verifying the token.
func GetSessionError(c *fiber.Ctx) error {
	err, _ := c.Locals(LocSessionError).(error)
	return err
}

// GetUserID returns the authenticated user id or "".
func GetUserID(c *fiber.Ctx) string {
	if s, ok := GetSession(c); ok {
		return s.UserID
	}
	return ""
}

// GetAdmin returns the admin resolved by the admin gate.
func GetAdmin(c *fiber.Ctx) *adminModel.AdminModel {
	a, _ := c.Locals(LocAdmin).(*adminModel.AdminModel)
	return a
}
