package intake

import (
	"errors"
	"fmt"
	"net/http"
)

// Condition classifies a pipeline failure by the stage that produced it.
type Condition int

const (
	MalformedForm Condition = iota
	PayloadTooLarge
	ValidationFailed
	NotFound
	UploadFailed
	PersistenceFailed
	NotificationFailed
)

// ErrPostingNotFound is returned by JobRepository.GetPosting when the
// referenced posting does not exist.
var ErrPostingNotFound = errors.New("posting not found")

// Error is the single failure type crossing the pipeline boundary.
// Every stage wraps its underlying error in one of these; the HTTP layer
// maps the Condition to a status and an endpoint-specific message.
type Error struct {
	Condition Condition
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("intake: %s: %v", e.Condition, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (c Condition) String() string {
	switch c {
	case MalformedForm:
		return "malformed form"
	case PayloadTooLarge:
		return "payload too large"
	case ValidationFailed:
		return "validation failed"
	case NotFound:
		return "not found"
	case UploadFailed:
		return "upload failed"
	case PersistenceFailed:
		return "persistence failed"
	case NotificationFailed:
		return "notification failed"
	}
	return "unknown"
}

// HTTPStatus returns the status the condition maps to.
func (c Condition) HTTPStatus() int {
	switch c {
	case MalformedForm, PayloadTooLarge, ValidationFailed:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fail(c Condition, err error) *Error {
	return &Error{Condition: c, Err: err}
}

// ConditionOf extracts the Condition from a pipeline error, or false if
// the error did not come out of the pipeline.
func ConditionOf(err error) (Condition, bool) {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Condition, true
	}
	return 0, false
}
