package reports

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/smartwastehq/smartwaste/internal/app/store/reports"
	"github.com/smartwastehq/smartwaste/internal/app/system/authz"
	"github.com/smartwastehq/smartwaste/internal/app/system/respond"
	"github.com/smartwastehq/smartwaste/internal/app/system/timeouts"
	"github.com/smartwastehq/smartwaste/internal/domain/models"
	"go.uber.org/zap"
)

// ServeCreate handles POST /api/reports.
//
// Requires title, description, category, location, and priority to be
// present; values are not validated beyond that. The server assigns status,
// reporter, and both timestamps; any reportedBy in the payload is ignored.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	_, uid, ok := authz.IdentityCtx(r)
	if !ok || uid == "" {
		respond.Error(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	for _, field := range requiredCreateFields {
		if _, present := raw[field]; !present {
			respond.Error(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	var req createRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "report create")
	defer cancel()

	store := reportstore.New(h.DB)
	created, err := store.Create(ctx, models.Report{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Priority:    req.Priority,
		Images:      req.Images,
		ReportedBy:  uid,
	})
	if err != nil {
		h.Log.Error("report create failed", zap.String("uid", uid), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to create report")
		return
	}

	respond.Success(w, http.StatusCreated, respond.Fields{
		"message":  "Report created successfully",
		"reportId": created.ID.Hex(),
	})
}
