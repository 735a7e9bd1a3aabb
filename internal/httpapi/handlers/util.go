package handlers

import (
	"encoding/json"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
)

// writeBody sets the content type and status before writing body in one call.
func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeJSON encodes payload with a trailing newline. An unencodable payload
// becomes a bare 500.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeBody(w, status, contentTypeJSON, append(body, '\n'))
}

func writeText(w http.ResponseWriter, status int, text string) {
	writeBody(w, status, contentTypeText, []byte(text))
}
