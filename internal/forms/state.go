package forms

import (
	"errors"
	"fmt"
)

// State is the lifecycle of one form instance's submission.
type State int

const (
	StateIdle State = iota
	StateSending
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// SubmitDisabled reports whether the submit control is disabled in this state.
// It never re-enables after success; a new instance starts idle.
func (s State) SubmitDisabled() bool {
	return s == StateSending || s == StateSuccess
}

// Succeeded reports whether a backend status counts as a successful submission.
// The form backend redirects on success, so 3xx is success too.
func Succeeded(status int) bool {
	return status >= 200 && status < 400
}

var (
	// ErrSubmitDisabled is returned when Submit is called while sending or after success.
	ErrSubmitDisabled = errors.New("forms: submit disabled")
	// ErrInvalid is returned when required fields are missing or malformed.
	ErrInvalid = errors.New("forms: invalid fields")
	// ErrUnknownForm is returned for an unrecognised form-name.
	ErrUnknownForm = errors.New("forms: unknown form")
)

// StatusError reports a non-success status from the form backend.
type StatusError struct {
	Form string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("forms: %s backend status %d", e.Form, e.Code)
}

// NetworkMessage is shown when the backend could not be reached.
const NetworkMessage = "Network issue. Please try again."

// GenericErrorMessage is shown when an error carries no message.
const GenericErrorMessage = "Something went wrong. Please try again."

// StatusMessage is shown for a non-success backend status.
func StatusMessage(code int, email string) string {
	return fmt.Sprintf("Something went wrong. Status %d. Please try again or email %s.", code, email)
}
