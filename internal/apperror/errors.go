package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error into one of the failure modes the API reports.
type Kind int

const (
	KindValidation Kind = iota + 1 // bad or missing input, blocks the action
	KindFetch                      // upstream catalog fetch failed
	KindPersistence                // state store or order sink failed
	KindNotFound                   // referenced entity does not exist
)

// Error is an application error carrying a kind and an optional wrapped cause.
type Error struct {
	Kind    Kind   `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an application error wrapping err (err may be nil).
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error         { return New(KindValidation, message, nil) }
func NotFound(message string) *Error           { return New(KindNotFound, message, nil) }
func Fetch(message string, err error) *Error   { return New(KindFetch, message, err) }
func Persist(message string, err error) *Error { return New(KindPersistence, message, err) }

// KindOf returns the kind of err, or 0 if err is not an application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

func statusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindFetch:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	case KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Handle writes err as a JSON error response with the status its kind maps to.
// Errors that are not application errors are reported as internal server errors
// without leaking the underlying message.
func Handle(w http.ResponseWriter, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = &Error{Kind: KindPersistence, Message: "internal server error", Err: err}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusOf(appErr.Kind))
	json.NewEncoder(w).Encode(appErr)
}
