package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// UserIdentity returns a resolved identity with the user role.
func UserIdentity(uid string) *auth.Identity {
	return &auth.Identity{UID: uid, Role: models.RoleUser, DisplayName: "Test User", Email: "user@test.com"}
}

// CleanerIdentity returns a resolved identity with the cleaner role.
func CleanerIdentity(uid string) *auth.Identity {
	return &auth.Identity{UID: uid, Role: models.RoleCleaner, DisplayName: "Test Cleaner", Email: "cleaner@test.com"}
}

// AdminIdentity returns a resolved identity with the admin role.
func AdminIdentity(uid string) *auth.Identity {
	return &auth.Identity{UID: uid, Role: models.RoleAdmin, DisplayName: "Test Admin", Email: "admin@test.com"}
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// NewAuthenticatedRequest creates an HTTP request with a resolved identity
// in context, bypassing token verification.
func NewAuthenticatedRequest(t *testing.T, method, target string, body any, id *auth.Identity) *http.Request {
	t.Helper()
	return auth.WithTestIdentity(NewRequest(t, method, target, body), id)
}

// Envelope is the decoded JSON response envelope.
type Envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// DecodeEnvelope parses the recorded response body.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}
