package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/app/store/reports"
	"github.com/smartwastehq/smartwaste/internal/app/system/authz"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeUpdate handles PUT /api/reports/{reportID}.
//
// Ownership is the only gate: the caller must be the reporter, whatever
// their role. Only the whitelisted mutable fields are copied from the
// payload; reportedBy, reportedAt, and id are ignored if supplied.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	_, uid, _ := authz.IdentityCtx(r)

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reportID"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Report not found")
		return
	}

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "report update")
	defer cancel()

	store := reportstore.New(h.DB)
	report, err := store.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respond.Error(w, http.StatusNotFound, "Report not found")
		return
	}
	if err != nil {
		h.Log.Error("report load failed", zap.String("report_id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	if !reportpolicy.CanMutate(report.ReportedBy, uid) {
		respond.Error(w, http.StatusForbidden, "Unauthorized to update this report")
		return
	}

	if err := store.UpdateFields(ctx, oid, input); err != nil {
		h.Log.Error("report update failed", zap.String("report_id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to update report")
		return
	}

	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Report updated successfully",
	})
}
