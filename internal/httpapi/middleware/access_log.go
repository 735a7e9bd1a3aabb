package middleware

import (
	"net/http"
	"time"

	"github.com/bengobox/clock-service/internal/httpapi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// AccessLog writes one structured entry per request.
type AccessLog struct {
	logger *zap.Logger
}

// NewAccessLog creates a new instance.
func NewAccessLog(logger *zap.Logger) *AccessLog {
	return &AccessLog{logger: logger}
}

// Handler logs method, route, status and latency once the request completes.
func (a *AccessLog) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := statusOf(ww)
		a.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", routeLabel(r, status)),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", httpapi.ClientIP(r)),
			zap.String("user_agent", httpapi.UserAgent(r)),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		)
	})
}

// routeLabel returns the matched chi pattern. Requests the router rejected
// get "method_not_allowed" for a known path with the wrong method and
// "unmatched" otherwise.
func routeLabel(r *http.Request, status int) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if status == http.StatusMethodNotAllowed {
		return "method_not_allowed"
	}
	return "unmatched"
}

func statusOf(ww chimiddleware.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
