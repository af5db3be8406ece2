// internal/testutil/http.go
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/go-chi/chi/v5"
)

// Client builds a remote-store client pointed at the fake store.
func Client(f *FakeRemote) *appwrite.Client {
	return appwrite.New(appwrite.Config{
		Endpoint: f.URL(),
		Project:  TestProject,
		APIKey:   TestAPIKey,
	})
}

// Databases builds a databases client over the fake store's admin scope.
func Databases(f *FakeRemote) *appwrite.Databases {
	return appwrite.NewDatabases(Client(f).AsAdmin(), TestDatabaseID)
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call handlers directly instead of
// going through the router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewJSONRequest creates a request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encode request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON decodes a recorded response body into out.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
