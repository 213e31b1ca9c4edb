package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/shared/server/middleware"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth())
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-Guest-Id", "tester")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerSubmitAndFetch(t *testing.T) {
	r := newTestRouter(NewService(NewMemoryRepo(), 0))

	w := doRequest(r, http.MethodGet, "/api/v1/assessment/current", "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"not_found"`) {
		t.Fatalf("expected 404 not_found, got %d %s", w.Code, w.Body.String())
	}

	body := `{"systolic":135,"diastolic":85,"heartRate":70,"bmi":26,"cholesterol":210,"bloodSugar":100,
		"sleepHours":6,"stressLevel":"high","saltIntake":"Medium","physicalActivity":false,"familyHistory":true,
		"height":165,"weight":72,"age":45,"gender":"Female"}`
	w = doRequest(r, http.MethodPost, "/api/v1/assessment", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	var created Record
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.UserID != "guest:tester" || created.StressLevel != "High" {
		t.Fatalf("unexpected record %+v", created)
	}

	w = doRequest(r, http.MethodGet, "/api/v1/assessment/current", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), created.ID) {
		t.Fatalf("expected current record, got %d %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/assessment/history", "")
	var hist struct {
		Items []Record `json:"items"`
		Limit int      `json:"limit"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &hist); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(hist.Items) != 1 || hist.Limit != DefaultHistoryLimit {
		t.Fatalf("unexpected history %+v", hist)
	}
}

func TestHandlerValidationErrors(t *testing.T) {
	r := newTestRouter(NewService(NewMemoryRepo(), 0))

	w := doRequest(r, http.MethodPost, "/api/v1/assessment", `{"systolic":`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), `"invalid_json"`) {
		t.Fatalf("expected invalid_json, got %d %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/v1/assessment", `{"systolic":50,"diastolic":80,"stressLevel":"Low","saltIntake":"Low","gender":"Male","height":170,"weight":70,"age":30}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var payload struct {
		Error struct {
			Code    string       `json:"code"`
			Details []FieldError `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "invalid_input" || len(payload.Error.Details) != 1 || payload.Error.Details[0].Field != "systolic" {
		t.Fatalf("unexpected error payload %s", w.Body.String())
	}
}

func TestHandlerDefaults(t *testing.T) {
	r := newTestRouter(NewService(NewMemoryRepo(), 0))
	w := doRequest(r, http.MethodGet, "/api/v1/assessment/defaults", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, want := range []string{`"systolic":120`, `"stressLevel":"Medium"`, `"parentBloodGroup1":"A"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Fatalf("expected %s in %s", want, w.Body.String())
		}
	}
}
