// Package auth resolves bearer credentials into a caller identity.
//
// Resolution has exactly two outcomes: a resolved Identity in the request
// context, or no identity at all (anonymous). A missing, malformed, or
// unverifiable token silently yields the anonymous outcome; it is never an
// error by itself. Read endpoints serve anonymous callers with the default
// `user` scoping, while write endpoints sit behind RequireIdentity and
// answer 401.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"go.uber.org/zap"
)

// Identity is the resolved caller: the verified token subject plus the
// profile attributes looked up from the user store. Role defaults to "user"
// when no profile document exists for the subject.
type Identity struct {
	UID         string
	Role        string
	DisplayName string
	Email       string
}

// TokenVerifier is the boundary to the external identity provider. Verify
// returns the token subject, or an error when the credential is expired,
// malformed, or carries a bad signature.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (subject string, err error)
}

// ProfileFetcher loads the stored profile for a uid. A nil profile with a
// nil error means no profile document exists.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, uid string) (*models.UserProfile, error)
}

type ctxKey string

const identityKey ctxKey = "identity"

// CurrentIdentity returns the resolved identity and a found flag.
func CurrentIdentity(r *http.Request) (*Identity, bool) {
	id, ok := r.Context().Value(identityKey).(*Identity)
	return id, ok
}

func withIdentity(r *http.Request, id *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

// WithTestIdentity injects an identity directly for handler tests,
// bypassing token verification.
func WithTestIdentity(r *http.Request, id *Identity) *http.Request {
	return withIdentity(r, id)
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
// Returns "" when the header is absent or the prefix is wrong.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) <= len("Bearer ") {
		return ""
	}
	if !strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

// ResolveIdentity returns middleware that resolves the bearer credential on
// every request. Verification failures fall back to anonymous rather than
// erroring; a profile-store failure keeps the verified identity but leaves
// the role at the "user" default.
func ResolveIdentity(verifier TokenVerifier, profiles ProfileFetcher, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug("bearer token rejected, continuing anonymous", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			id := &Identity{UID: subject, Role: models.RoleUser}
			profile, err := profiles.FetchProfile(r.Context(), subject)
			if err != nil {
				log.Warn("profile lookup failed, using default role",
					zap.String("uid", subject), zap.Error(err))
			} else if profile != nil {
				if profile.Role != "" {
					id.Role = profile.Role
				}
				id.DisplayName = profile.DisplayName
				id.Email = profile.Email
			}

			next.ServeHTTP(w, withIdentity(r, id))
		})
	}
}

// RequireIdentity guards write-class endpoints: requests that resolved to
// anonymous get a 401 envelope.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentIdentity(r); !ok {
			respond.Error(w, http.StatusUnauthorized, "Authorization token required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
