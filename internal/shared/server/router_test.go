package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/shared/config"
	"pulseguard-backend/internal/shared/server/middleware"
)

type stubRoutes struct{}

func (stubRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/weather", func(c *gin.Context) { c.Status(http.StatusOK) })
	rg.POST("/reports", func(c *gin.Context) { c.Status(http.StatusCreated) })
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return NewRouter(RouterDeps{
		Config:      config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}},
		Weather:     stubRoutes{},
		RateLimiter: middleware.NewRateLimiter(func() time.Time { return now }),
	})
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	r := newTestRouter()
	for _, path := range []string{"/api/v1/health", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestMeRequiresIdentity(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", "g1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"isGuest":true`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestReportsGroupIsLimitedSeparately(t *testing.T) {
	r := newTestRouter()
	send := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("X-Guest-Id", "g2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	burst := defaultRateLimitRules[GroupReports].Burst
	for i := 0; i < burst; i++ {
		if code := send(http.MethodPost, "/api/v1/reports"); code != http.StatusCreated {
			t.Fatalf("report %d: expected 201, got %d", i+1, code)
		}
	}
	if code := send(http.MethodPost, "/api/v1/reports"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := send(http.MethodGet, "/api/v1/weather"); code != http.StatusOK {
		t.Fatalf("weather group should be unaffected, got %d", code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
