package httpapi

import (
	"net"
	"net/http"
)

// ClientIP returns the caller address without its port. Proxy headers are
// already folded into RemoteAddr by chi's RealIP middleware.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserAgent returns the request user agent string.
func UserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}
