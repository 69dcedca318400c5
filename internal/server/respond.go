package server

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in error bodies. The remote client maps the exported
// ones back onto collection sentinels.
const (
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeMissingID         = "missing_id"
	CodeUnknownCollection = "unknown_collection"
	codeBadRequest        = "bad_request"
	codeUnauthorized      = "unauthorized"
	codeRateLimited       = "rate_limited"
	codeInternal          = "internal"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorBody{Error: msg, Code: code})
}
