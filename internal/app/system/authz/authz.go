// Package authz provides role accessors over the resolved identity.
//
// These helpers read the role attached at resolution time. The two
// admin-gated operations (assign, cleaner listing) do NOT trust this value:
// they re-fetch the stored profile through the policy layer at call time.
package authz

import (
	"net/http"
	"strings"

	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
)

// IdentityCtx returns the caller's role, uid, and a found flag. Anonymous
// callers get role "user" with an empty uid and ok=false, so every
// permission decision can treat them as an unidentified citizen.
func IdentityCtx(r *http.Request) (role string, uid string, ok bool) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		return models.RoleUser, "", false
	}
	return strings.ToLower(id.Role), id.UID, true
}

// IsAdmin reports whether the resolved identity carries the admin role.
func IsAdmin(r *http.Request) bool {
	role, _, ok := IdentityCtx(r)
	return ok && role == models.RoleAdmin
}

// IsCleaner reports whether the resolved identity carries the cleaner role.
func IsCleaner(r *http.Request) bool {
	role, _, ok := IdentityCtx(r)
	return ok && role == models.RoleCleaner
}

// HasAnyRole reports whether the caller is authenticated with one of the
// given roles.
func HasAnyRole(r *http.Request, roles ...string) bool {
	cur, _, ok := IdentityCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if cur == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
