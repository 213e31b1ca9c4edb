package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/records"
	"pulseguard-backend/internal/reports"
	"pulseguard-backend/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Env:             "dev",
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
	}
}

func TestBuildDevUsesMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if app.DB != nil || app.Queue != nil || app.Redis != nil {
		t.Fatalf("expected no external infrastructure, got db=%v queue=%v redis=%v", app.DB, app.Queue, app.Redis)
	}
	if _, ok := app.RecordsRepo.(*records.MemoryRepo); !ok {
		t.Fatalf("expected memory records repo, got %T", app.RecordsRepo)
	}
	if _, ok := app.ReportsRepo.(*reports.MemoryRepo); !ok {
		t.Fatalf("expected memory reports repo, got %T", app.ReportsRepo)
	}
	if app.WeatherService.Provider != nil {
		t.Fatalf("expected weather provider to be disabled without a key")
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"
	if _, err := Build(cfg); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}

func TestBuildRouterServesAssessmentFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if _, err := app.RecordsService.Submit(context.Background(), "guest:abc", records.Defaults()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis", nil)
	req.Header.Set("X-Guest-Id", "abc")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"riskScore":29`) {
		t.Fatalf("unexpected analysis response %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/weather?city=London", nil)
	req.Header.Set("X-Guest-Id", "abc")
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without weather key, got %d", w.Code)
	}
}
