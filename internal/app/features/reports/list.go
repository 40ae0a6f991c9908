package reports

import (
	"net/http"
	"strconv"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/app/store/reports"
	"github.com/smartwastehq/smartwaste/internal/app/system/authz"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/app/system/timeouts"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ServeList handles GET /api/reports - the role-scoped report list.
//
// The policy's forced filter is applied first: users see their own reports,
// cleaners their assigned queue (or an explicitly requested one), admins
// everything. Caller-supplied category and status narrow the result; sort is
// reportedAt descending; limit defaults to 50.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	role, uid, _ := authz.IdentityCtx(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "report list")
	defer cancel()

	assignedTo := query.Get(r, "assignedTo")
	filter := reportstore.ListFilter{
		Scope:    reportpolicy.ListScope(role, uid, assignedTo),
		Category: query.Get(r, "category"),
		Status:   query.Get(r, "status"),
	}
	// Admins have no forced scope; an explicit assignedTo is an ordinary
	// caller filter for them.
	if role == models.RoleAdmin && assignedTo != "" {
		filter.AssignedTo = assignedTo
	}
	if v := query.Get(r, "limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	store := reportstore.New(h.DB)
	reports, err := store.List(ctx, filter)
	if err != nil {
		h.Log.Error("report list query failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	respond.Success(w, http.StatusOK, respond.Fields{
		"data":  toResponses(reports),
		"count": len(reports),
	})
}
