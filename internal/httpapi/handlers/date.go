package handlers

import (
	"net/http"
	"time"
)

// DateLayout renders an instant as YYYY-MM-DD HH:MM.
const DateLayout = "2006-01-02 15:04"

// Clock returns the current instant.
type Clock func() time.Time

// FormatDate converts t to UTC and renders it with DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Date returns a handler writing the current UTC minute as plain text.
// A nil clock falls back to time.Now.
func Date(clock Clock) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, FormatDate(clock()))
	}
}
