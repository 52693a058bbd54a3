// Package apperror is the error taxonomy shared by services and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnavailable
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnavailable:
		return "service_unavailable"
	case KindUpstream:
		return "upstream_error"
	default:
		return "internal_error"
	}
}

// Fallback is a user-facing text returned alongside the error under Key,
// e.g. {"response": "Error connecting to Plant Assistant."}.
type Fallback struct {
	Key  string
	Text string
}

type Error struct {
	Kind     Kind
	Message  string
	Missing  []string
	Fallback *Fallback
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the text exposed to callers as the "error" field.
func (e *Error) Detail() string {
	if e.Kind == KindUpstream && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// WithFallback returns a copy of e carrying a fallback text.
func (e *Error) WithFallback(key, text string) *Error {
	cp := *e
	cp.Fallback = &Fallback{Key: key, Text: text}
	return &cp
}

func BadRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// MissingFields reports every absent field, prefix names the payload
// ("Missing required features", "Missing sensor data fields").
func MissingFields(prefix string, names []string) *Error {
	return &Error{
		Kind:    KindBadRequest,
		Message: fmt.Sprintf("%s: %s", prefix, strings.Join(names, ", ")),
		Missing: names,
	}
}

func Unavailable(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// From converts any error into an *Error, unknown errors become internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected server error occurred.", err)
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
