package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"go.uber.org/zap"
)

type fakeVerifier struct {
	subject string
	err     error
}

func (f fakeVerifier) Verify(context.Context, string) (string, error) {
	return f.subject, f.err
}

type fakeProfiles struct {
	profile *models.UserProfile
	err     error
}

func (f fakeProfiles) FetchProfile(context.Context, string) (*models.UserProfile, error) {
	return f.profile, f.err
}

// resolve runs the middleware against a single request and returns the
// identity the inner handler observed.
func resolve(t *testing.T, req *http.Request, v auth.TokenVerifier, p auth.ProfileFetcher) (*auth.Identity, bool) {
	t.Helper()

	var got *auth.Identity
	var ok bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.CurrentIdentity(r)
	})

	mw := auth.ResolveIdentity(v, p, zap.NewNop())
	mw(inner).ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestBearerToken_Present(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	if got := auth.BearerToken(req); got != "abc.def.ghi" {
		t.Errorf("BearerToken: got %q", got)
	}
}

func TestBearerToken_MissingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	if got := auth.BearerToken(req); got != "" {
		t.Errorf("BearerToken: got %q, want empty", got)
	}
}

func TestBearerToken_WrongPrefix(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	if got := auth.BearerToken(req); got != "" {
		t.Errorf("BearerToken: got %q, want empty", got)
	}
}

func TestResolveIdentity_NoToken_Anonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	_, ok := resolve(t, req, fakeVerifier{subject: "uid-1"}, fakeProfiles{})
	if ok {
		t.Error("expected anonymous outcome with no token")
	}
}

func TestResolveIdentity_BadToken_SilentAnonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer expired")

	_, ok := resolve(t, req, fakeVerifier{err: errors.New("token expired")}, fakeProfiles{})
	if ok {
		t.Error("expected a rejected token to fall back to anonymous, not error")
	}
}

func TestResolveIdentity_ValidToken_WithProfile(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer good")

	id, ok := resolve(t, req, fakeVerifier{subject: "uid-1"}, fakeProfiles{
		profile: &models.UserProfile{UID: "uid-1", Role: models.RoleCleaner, DisplayName: "C", Email: "c@test.com"},
	})
	if !ok {
		t.Fatal("expected a resolved identity")
	}
	if id.UID != "uid-1" || id.Role != models.RoleCleaner {
		t.Errorf("identity: got %+v", id)
	}
	if id.DisplayName != "C" || id.Email != "c@test.com" {
		t.Errorf("profile attributes not carried: %+v", id)
	}
}

func TestResolveIdentity_ValidToken_NoProfile_DefaultsUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer good")

	id, ok := resolve(t, req, fakeVerifier{subject: "uid-2"}, fakeProfiles{profile: nil})
	if !ok {
		t.Fatal("expected a resolved identity")
	}
	if id.Role != models.RoleUser {
		t.Errorf("role: got %q, want %q", id.Role, models.RoleUser)
	}
}

func TestResolveIdentity_ProfileStoreError_KeepsIdentity(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer good")

	id, ok := resolve(t, req, fakeVerifier{subject: "uid-3"}, fakeProfiles{err: errors.New("store down")})
	if !ok {
		t.Fatal("expected the verified identity to survive a profile lookup failure")
	}
	if id.UID != "uid-3" || id.Role != models.RoleUser {
		t.Errorf("identity: got %+v", id)
	}
}

func TestRequireIdentity_Anonymous401(t *testing.T) {
	rec := httptest.NewRecorder()
	called := false
	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	auth.RequireIdentity(inner).ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("inner handler must not run for anonymous callers")
	}
}

func TestRequireIdentity_ResolvedPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	called := false
	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := auth.WithTestIdentity(httptest.NewRequest("POST", "/", nil), &auth.Identity{UID: "uid-1", Role: models.RoleUser})
	auth.RequireIdentity(inner).ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler should run for a resolved identity")
	}
}
