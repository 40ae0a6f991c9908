// Package profile echoes the verified identity back to the caller.
package profile

import (
	"net/http"

	"github.com/smartwastehq/smartwaste/internal/app/system/auth"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ServeProfile handles GET /api/user/profile. The data comes straight from
// the resolved identity: the verified subject plus the stored profile
// attributes (role defaulted to user when no profile exists).
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	respond.Success(w, http.StatusOK, respond.Fields{
		"data": map[string]any{
			"uid":         id.UID,
			"role":        id.Role,
			"displayName": id.DisplayName,
			"email":       id.Email,
		},
	})
}
