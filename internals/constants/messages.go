package constants

// Generic messages that must not leak internal details.
const (
	MsgUnauthorized        = "Unauthorized"
	MsgForbidden           = "Forbidden"
	MsgAuthFailed          = "Authentication failed"
	MsgInternalServerError = "Internal server error"
	MsgNotAuthorized       = "Not authorized"
	MsgFailedToDelete      = "Failed to delete"
)
