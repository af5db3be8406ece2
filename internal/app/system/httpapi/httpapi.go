// internal/app/system/httpapi/httpapi.go
//
// Package httpapi centralizes JSON responses and the error taxonomy:
// validation → 400 naming the field, authentication → 401 generic,
// not-found → 404 naming the resource, conflict → 400 descriptive,
// upstream → 500 with only non-sensitive remote messages surfaced.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/genielearn/genielearn/internal/appwrite"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Fail writes {"error": msg} with the given status.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// Validation rejects bad input. msg should name the offending field.
func Validation(w http.ResponseWriter, msg string) {
	Fail(w, http.StatusBadRequest, msg)
}

// Unauthorized answers with a generic 401. The message never
// distinguishes "no cookie" from "expired token".
func Unauthorized(w http.ResponseWriter) {
	Fail(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound answers 404 naming the resource type, e.g. "Group not found".
func NotFound(w http.ResponseWriter, resource string) {
	Fail(w, http.StatusNotFound, resource+" not found")
}

// Conflict rejects a duplicate (already registered, already a member).
// The remote conflict code maps to 400 for the caller, not 409.
func Conflict(w http.ResponseWriter, msg string) {
	Fail(w, http.StatusBadRequest, msg)
}

// Upstream answers 500. The remote message is surfaced only when the
// error actually came from the store's structured error body; transport
// errors can embed endpoints or keys and are replaced wholesale.
func Upstream(w http.ResponseWriter, err error) {
	msg := appwrite.ErrorMessage(err)
	if msg == "" {
		msg = "Unexpected server error"
	}
	Fail(w, http.StatusInternalServerError, msg)
}

// MapRemote translates a remote-store failure for the caller: 404 →
// 404 naming the resource, 401 → 401 (an invalid or expired session is
// never a server error), anything else → 500.
func MapRemote(w http.ResponseWriter, err error, resource string) {
	switch {
	case appwrite.IsNotFound(err):
		NotFound(w, resource)
	case appwrite.IsUnauthorized(err):
		Unauthorized(w)
	default:
		Upstream(w, err)
	}
}
