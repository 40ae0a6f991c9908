// Package respond writes the uniform JSON envelope used by every API
// endpoint: {"success": true, ...} on success and
// {"success": false, "error": "..."} on failure.
package respond

import (
	"encoding/json"
	"net/http"
)

// Fields holds the payload keys merged into a success envelope.
type Fields map[string]any

// Success writes a success envelope with the given status code. The fields
// are merged alongside "success": true, so callers control the exact shape
// ("data", "count", "message", "reportId", ...).
func Success(w http.ResponseWriter, status int, fields Fields) {
	body := make(map[string]any, len(fields)+1)
	body["success"] = true
	for k, v := range fields {
		body[k] = v
	}
	write(w, status, body)
}

// Error writes a failure envelope with the given status code and message.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func write(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
