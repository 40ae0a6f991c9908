package stats

import (
	"net/http"

	"github.com/smartwastehq/smartwaste/internal/app/policy/reportpolicy"
	"github.com/smartwastehq/smartwaste/internal/app/store/reports"
	"github.com/smartwastehq/smartwaste/internal/app/store/users"
	"github.com/smartwastehq/smartwaste/internal/app/system/authz"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/app/system/timeouts"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes returns the subrouter mounted under /api/stats.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeStats)
	return r
}

// ServeStats handles GET /api/stats.
//
// Every count query carries the caller's forced filter: users count their
// own reports, cleaners their assigned ones, admins the whole system. The
// category loop always walks the fixed six categories in declaration order.
// Admins additionally get user and cleaner profile counts. The counts are
// independent queries; a report changing between two of them is an accepted
// transient inconsistency.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	role, uid, _ := authz.IdentityCtx(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "stats")
	defer cancel()

	scope := reportpolicy.StatsScope(role, uid)
	store := reportstore.New(h.DB)

	total, err := store.CountByFilter(ctx, reportstore.ListFilter{Scope: scope})
	if err != nil {
		h.Log.Error("stats total count failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	statusStats := map[string]int64{}
	for key, status := range map[string]string{
		"pending":    models.StatusPending,
		"inProgress": models.StatusInProgress,
		"resolved":   models.StatusResolved,
	} {
		n, err := store.CountByFilter(ctx, reportstore.ListFilter{Scope: scope, Status: status})
		if err != nil {
			h.Log.Error("stats status count failed", zap.String("status", status), zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
		statusStats[key] = n
	}

	categoryStats := map[string]int64{}
	for _, category := range models.Categories {
		n, err := store.CountByFilter(ctx, reportstore.ListFilter{Scope: scope, Category: category})
		if err != nil {
			h.Log.Error("stats category count failed", zap.String("category", category), zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
		categoryStats[category] = n
	}

	data := map[string]any{
		"totalReports":  total,
		"statusStats":   statusStats,
		"categoryStats": categoryStats,
	}

	if role == models.RoleAdmin {
		users := userstore.New(h.DB)
		totalUsers, err := users.CountByRole(ctx, models.RoleUser)
		if err != nil {
			h.Log.Error("stats user count failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
		totalCleaners, err := users.CountByRole(ctx, models.RoleCleaner)
		if err != nil {
			h.Log.Error("stats cleaner count failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
		data["userStats"] = map[string]int64{
			"totalUsers":    totalUsers,
			"totalCleaners": totalCleaners,
		}
	}

	respond.Success(w, http.StatusOK, respond.Fields{"data": data})
}
