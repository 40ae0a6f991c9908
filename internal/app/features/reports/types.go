package reports

import (
	"time"

	"github.com/smartwastehq/smartwaste/internal/domain/models"
)

// reportResponse is the wire shape of a report. Timestamps are rendered as
// RFC 3339 text; a report without a timestamp omits the field rather than
// defaulting it.
type reportResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Location    map[string]any `json:"location"`
	Priority    string         `json:"priority"`
	Images      []string       `json:"images"`
	Status      string         `json:"status"`
	ReportedBy  string         `json:"reportedBy"`
	AssignedTo  string         `json:"assignedTo,omitempty"`
	ReportedAt  string         `json:"reportedAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

func toResponse(m models.Report) reportResponse {
	resp := reportResponse{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Location:    m.Location,
		Priority:    m.Priority,
		Images:      m.Images,
		Status:      m.Status,
		ReportedBy:  m.ReportedBy,
		AssignedTo:  m.AssignedTo,
	}
	if !m.ReportedAt.IsZero() {
		resp.ReportedAt = m.ReportedAt.UTC().Format(time.RFC3339)
	}
	if !m.UpdatedAt.IsZero() {
		resp.UpdatedAt = m.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func toResponses(ms []models.Report) []reportResponse {
	out := make([]reportResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toResponse(m))
	}
	return out
}

// createRequest carries the typed fields of a create payload. Presence of
// required keys is checked separately against the raw JSON object, so a key
// set to null still counts as present.
type createRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Location    map[string]any `json:"location"`
	Priority    string         `json:"priority"`
	Images      []string       `json:"images"`
}

// requiredCreateFields must all be present in a create payload. Images are
// optional and default to an empty list.
var requiredCreateFields = []string{"title", "description", "category", "location", "priority"}

type assignRequest struct {
	CleanerID string `json:"cleanerId"`
}
