// Package cleaners serves the admin-only cleaner directory, used by the
// triage UI to populate its assignment picker.
package cleaners

import (
	"net/http"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/app/store/users"
	"github.com/smartwastehq/smartwaste/internal/app/system/authz"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/app/system/timeouts"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// ServeList handles GET /api/cleaners. Like assign, the admin gate
// re-fetches the stored profile; a caller without a profile document is
// denied even if their token resolved with an admin claim.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	_, uid, _ := authz.IdentityCtx(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "cleaner list")
	defer cancel()

	users := userstore.New(h.DB)
	isAdmin, err := reportpolicy.IsStoredAdmin(ctx, users, uid)
	if err != nil {
		h.Log.Error("admin role lookup failed", zap.String("uid", uid), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to verify permissions")
		return
	}
	if !isAdmin {
		respond.Error(w, http.StatusForbidden, "Admin access required")
		return
	}

	cleaners, err := users.ListByRole(ctx, models.RoleCleaner)
	if err != nil {
		h.Log.Error("cleaner list query failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to list cleaners")
		return
	}

	respond.Success(w, http.StatusOK, respond.Fields{
		"data":  cleaners,
		"count": len(cleaners),
	})
}
