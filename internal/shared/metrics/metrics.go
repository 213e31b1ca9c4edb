package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every series served at /metrics.
var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	assessmentsSubmitted = factory.NewCounter(prometheus.CounterOpts{
		Name: "assessments_submitted_total",
		Help: "Total health assessments submitted",
	})

	weatherLookups = factory.NewCounter(prometheus.CounterOpts{
		Name: "weather_lookups_total",
		Help: "Total upstream weather lookups",
	})
	weatherLookupFailures = factory.NewCounter(prometheus.CounterOpts{
		Name: "weather_lookup_failures_total",
		Help: "Total failed upstream weather lookups",
	})
	weatherCacheHits = factory.NewCounter(prometheus.CounterOpts{
		Name: "weather_cache_hits_total",
		Help: "Total weather lookups served from cache",
	})
	weatherLookupDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "weather_lookup_duration_ms",
		Help:    "Upstream weather lookup duration in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2000, 5000, 10000},
	})

	reportsRendered = factory.NewCounter(prometheus.CounterOpts{
		Name: "reports_rendered_total",
		Help: "Total PDF reports rendered",
	})
	reportsFailed = factory.NewCounter(prometheus.CounterOpts{
		Name: "reports_failed_total",
		Help: "Total PDF reports that failed to render",
	})

	reportJobsReceived = factory.NewCounter(prometheus.CounterOpts{
		Name: "report_jobs_received_total",
		Help: "Total report jobs received by workers",
	})
	reportJobsDeletedUnrecoverable = factory.NewCounter(prometheus.CounterOpts{
		Name: "report_jobs_deleted_unrecoverable_total",
		Help: "Total report jobs dropped as unrecoverable",
	})
	reportJobsDeadLettered = factory.NewCounter(prometheus.CounterOpts{
		Name: "report_jobs_dead_lettered_total",
		Help: "Total report jobs rejected after a failed redelivery",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncAssessmentsSubmitted counts stored health assessments.
func IncAssessmentsSubmitted() { assessmentsSubmitted.Inc() }

// IncWeatherLookups counts upstream weather lookups (cache misses).
func IncWeatherLookups() { weatherLookups.Inc() }

// IncWeatherLookupFailures counts failed upstream weather lookups.
func IncWeatherLookupFailures() { weatherLookupFailures.Inc() }

// IncWeatherCacheHits counts lookups answered from the cache.
func IncWeatherCacheHits() { weatherCacheHits.Inc() }

func IncReportsRendered() { reportsRendered.Inc() }

func IncReportsFailed() { reportsFailed.Inc() }

func IncReportJobsReceived() { reportJobsReceived.Inc() }

func IncReportJobsDeletedUnrecoverable() { reportJobsDeletedUnrecoverable.Inc() }

func IncReportJobsDeadLettered() { reportJobsDeadLettered.Inc() }

// ObserveWeatherLookupMs records an upstream weather lookup duration in milliseconds.
func ObserveWeatherLookupMs(value float64) {
	weatherLookupDuration.Observe(max(value, 0))
}

// Handler serves Registry in the Prometheus exposition format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// SinceMillis returns the elapsed time since start in milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
