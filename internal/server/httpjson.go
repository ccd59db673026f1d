package server

import (
	"encoding/json"
	"net/http"
)

// errorBody is the structured error shape every non-2xx JSON response uses.
type errorBody struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encode errors past this point cannot change the status line; the
	// transport sees a truncated body, which is the correct failure signal.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, data map[string]any) {
	writeJSON(w, status, errorBody{Message: msg, Data: data})
}
