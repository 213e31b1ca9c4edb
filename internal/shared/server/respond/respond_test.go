package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorWritesEnvelopeWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/assessment", nil)

	Error(c, http.StatusBadRequest, "invalid_input", "bad record", []FieldError{{Field: "systolic", Reason: "must be at least 60"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !c.IsAborted() {
		t.Fatalf("expected context to be aborted")
	}
	var body struct {
		Error struct {
			Code    string       `json:"code"`
			Details []FieldError `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "invalid_input" || len(body.Error.Details) != 1 || body.Error.Details[0].Field != "systolic" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
