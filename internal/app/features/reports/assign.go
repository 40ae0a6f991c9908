package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/app/store/reports"
	"github.com/smartwastehq/smartwaste/internal/app/store/users"
	"github.com/smartwastehq/smartwaste/internal/app/system/authz"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeAssign handles PUT /api/reports/{reportID}/assign.
//
// The admin check re-fetches the caller's stored profile at call time; the
// role resolved with the request is not trusted for this operation. Assign
// forces status to In Progress, overwriting whatever status the report had.
// The cleanerId is taken as given, without checking it refers to a cleaner
// profile.
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	_, uid, _ := authz.IdentityCtx(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "report assign")
	defer cancel()

	isAdmin, err := reportpolicy.IsStoredAdmin(ctx, userstore.New(h.DB), uid)
	if err != nil {
		h.Log.Error("admin role lookup failed", zap.String("uid", uid), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to verify permissions")
		return
	}
	if !isAdmin {
		respond.Error(w, http.StatusForbidden, "Admin access required")
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reportID"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Report not found")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.CleanerID) == "" {
		respond.Error(w, http.StatusBadRequest, "Missing required field: cleanerId")
		return
	}

	store := reportstore.New(h.DB)
	if _, err := store.GetByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "Report not found")
			return
		}
		h.Log.Error("report load failed", zap.String("report_id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	if err := store.Assign(ctx, oid, req.CleanerID); err != nil {
		h.Log.Error("report assign failed", zap.String("report_id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to assign report")
		return
	}

	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Report assigned successfully",
	})
}
