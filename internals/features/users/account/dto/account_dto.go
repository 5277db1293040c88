// internals/features/users/account/dto/account_dto.go
package dto

import "strings"

const DeleteConfirmationWord = "DELETE"

// DeleteAccountForm is posted form-encoded by the settings page; JSON works too.
type DeleteAccountForm struct {
	Confirmation string `json:"confirmation" form:"confirmation"`
}

// Confirmed is case-sensitive; surrounding spaces are ignored.
func (f DeleteAccountForm) Confirmed() bool {
	return strings.TrimSpace(f.Confirmation) == DeleteConfirmationWord
}

// ActionResult is the outcome of a user-facing action. A false Success carries
// a message meant for the user.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Fail(msg string) ActionResult { return ActionResult{Success: false, Message: msg} }

func OK() ActionResult { return ActionResult{Success: true} }
