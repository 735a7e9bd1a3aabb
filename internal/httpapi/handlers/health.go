package handlers

import "net/http"

// HealthResponse is the liveness payload returned by /healthz.
type HealthResponse struct {
	Message string `json:"message"`
}

var healthy = HealthResponse{Message: "I am healthy"}

// Health responds with a fixed liveness message.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthy)
}
