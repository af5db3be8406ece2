// internal/appwrite/errors.go
package appwrite

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the structured error body returned by the remote store.
type Error struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote store: %s (%d %s)", e.Message, e.Code, e.Type)
}

func remoteCode(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.Code
	}
	return 0
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool { return remoteCode(err) == http.StatusNotFound }

// IsUnauthorized reports whether err is a remote 401. Handlers map this
// to 401 for the caller, never 500: an invalid or expired session token
// is the caller's problem, not ours.
func IsUnauthorized(err error) bool { return remoteCode(err) == http.StatusUnauthorized }

// IsConflict reports whether err is a remote 409 (e.g. duplicate email).
func IsConflict(err error) bool { return remoteCode(err) == http.StatusConflict }

// ErrorMessage returns the remote error message when err came from the
// store, or "" for transport and decoding failures. Remote messages are
// safe to surface; transport errors may embed URLs and are not.
func ErrorMessage(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}
