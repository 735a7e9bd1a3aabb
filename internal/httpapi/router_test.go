package httpapi_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bengobox/clock-service/internal/httpapi"
	"github.com/bengobox/clock-service/internal/httpapi/handlers"
	"github.com/bengobox/clock-service/internal/httpapi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, enableDocs bool) *httptest.Server {
	t.Helper()

	reg := prometheus.NewRegistry()
	router := httpapi.NewRouter(httpapi.RouterDeps{
		HealthHandler: handlers.Health,
		DateHandler: handlers.Date(func() time.Time {
			return time.Date(2024, 3, 5, 14, 7, 33, 0, time.UTC)
		}),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		EnableDocs:     enableDocs,
		AllowedOrigins: []string{"*"},
		RequestTimeout: 5 * time.Second,
		AccessLog:      middleware.NewAccessLog(zap.NewNop()).Handler,
		Instrument:     middleware.NewMetrics(reg).Instrument,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, client *http.Client, method, url string) (int, http.Header, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, resp.Header, string(body)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK, `{"message":"I am healthy"}` + "\n"},
		{"date", http.MethodGet, "/date", http.StatusOK, "2024-03-05 14:07"},
		{"health head", http.MethodHead, "/healthz", http.StatusOK, ""},
		{"date head", http.MethodHead, "/date", http.StatusOK, ""},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, ""},
		{"health wrong method", http.MethodPost, "/healthz", http.StatusMethodNotAllowed, ""},
		{"date wrong method", http.MethodDelete, "/date", http.StatusMethodNotAllowed, ""},
		{"openapi", http.MethodGet, "/openapi.json", http.StatusOK, ""},
		{"docs", http.MethodGet, "/docs", http.StatusOK, ""},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := get(t, srv.Client(), tt.method, srv.URL+tt.path)
			if status != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, status, tt.wantStatus)
			}
			if tt.wantBody != "" && body != tt.wantBody {
				t.Errorf("%s %s body = %q, want %q", tt.method, tt.path, body, tt.wantBody)
			}
		})
	}
}

func TestRoutesDocsDisabled(t *testing.T) {
	srv := newTestServer(t, false)

	for _, path := range []string{"/openapi.json", "/docs"} {
		if status, _, _ := get(t, srv.Client(), http.MethodGet, srv.URL+path); status != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want %d", path, status, http.StatusNotFound)
		}
	}
}

func TestHealthIgnoresHeaders(t *testing.T) {
	srv := newTestServer(t, false)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body, _ := io.ReadAll(resp.Body)

	if got := strings.TrimSpace(string(body)); got != `{"message":"I am healthy"}` {
		t.Errorf("body = %q, want health payload", got)
	}
}

// TestHealthConcurrent tests that parallel callers all see the same payload
func TestHealthConcurrent(t *testing.T) {
	srv := newTestServer(t, false)

	const n = 50
	var wg sync.WaitGroup
	statuses := make([]int, n)
	bodies := make([]string, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := srv.Client().Get(srv.URL + "/healthz")
			if err != nil {
				errs[i] = err
				return
			}
			defer resp.Body.Close() //nolint:errcheck
			b, err := io.ReadAll(resp.Body)
			statuses[i], bodies[i], errs[i] = resp.StatusCode, string(b), err
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("request %d: %v", i, errs[i])
		}
		if statuses[i] != http.StatusOK {
			t.Errorf("request %d status = %d, want %d", i, statuses[i], http.StatusOK)
		}
		if bodies[i] != bodies[0] {
			t.Errorf("request %d body = %q, want %q", i, bodies[i], bodies[0])
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/date", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("OPTIONS /date: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
