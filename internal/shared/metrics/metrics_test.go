package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(weatherCacheHits)
	IncWeatherCacheHits()
	IncWeatherCacheHits()
	if got := testutil.ToFloat64(weatherCacheHits) - before; got != 2 {
		t.Fatalf("expected 2 cache hits, got %v", got)
	}

	before = testutil.ToFloat64(reportJobsDeadLettered)
	IncReportJobsDeadLettered()
	if got := testutil.ToFloat64(reportJobsDeadLettered) - before; got != 1 {
		t.Fatalf("expected 1 dead-lettered job, got %v", got)
	}
}

func histogramState(t *testing.T) (uint64, float64) {
	t.Helper()
	var m dto.Metric
	if err := weatherLookupDuration.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestObserveClampsNegativeDuration(t *testing.T) {
	count, sum := histogramState(t)
	ObserveWeatherLookupMs(-5)
	ObserveWeatherLookupMs(120)

	gotCount, gotSum := histogramState(t)
	if gotCount-count != 2 {
		t.Fatalf("expected 2 observations, got %d", gotCount-count)
	}
	if gotSum-sum != 120 {
		t.Fatalf("expected sum to grow by 120, got %v", gotSum-sum)
	}
}

func TestHandlerServesRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	IncAssessmentsSubmitted()
	ObserveWeatherLookupMs(80)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{
		"# TYPE assessments_submitted_total counter",
		"# TYPE report_jobs_deleted_unrecoverable_total counter",
		"# TYPE weather_lookup_duration_ms histogram",
		`weather_lookup_duration_ms_bucket{le="+Inf"}`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in output:\n%s", want, body)
		}
	}
}
