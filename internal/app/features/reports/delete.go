package reports

import (
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

// ServeDelete handles DELETE /api/reports/{reportID}. Ownership-gated, same
// rule as update: no role, admin included, may delete another user's report.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	_, uid, _ := authz.IdentityCtx(r)

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reportID"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Report not found")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "report delete")
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
		respond.Error(w, http.StatusForbidden, "Unauthorized to delete this report")
		return
	}

	if _, err := store.Delete(ctx, oid); err != nil {
		h.Log.Error("report delete failed", zap.String("report_id", oid.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to delete report")
		return
	}

	respond.Success(w, http.StatusOK, respond.Fields{
		"message": "Report deleted successfully",
	})
}
