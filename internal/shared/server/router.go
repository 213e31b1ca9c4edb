package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/shared/config"
	"pulseguard-backend/internal/shared/metrics"
	"pulseguard-backend/internal/shared/server/middleware"
	"pulseguard-backend/internal/shared/server/respond"
)

// RouteRegistrar is implemented by feature handlers.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps lists the feature handlers mounted under /api/v1. Nil handlers
// are skipped.
type RouterDeps struct {
	Config      config.Config
	Records     RouteRegistrar
	Dashboard   RouteRegistrar
	Weather     RouteRegistrar
	Reports     RouteRegistrar
	RateLimiter *middleware.RateLimiter
}

// Rate limit groups.
const (
	GroupDefault = "DEFAULT"
	GroupWeather = "WEATHER"
	GroupReports = "REPORTS"
)

var defaultRateLimitRules = map[string]middleware.RateLimitRule{
	GroupDefault: {Rate: 5, Burst: 30},
	GroupWeather: {Rate: 0.5, Burst: 5},
	GroupReports: {Rate: 0.2, Burst: 3},
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        defaultRateLimitRules,
			DefaultGroup: GroupDefault,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.RateLimiter,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	registerMeRoutes(api)
	for _, h := range []RouteRegistrar{deps.Records, deps.Dashboard, deps.Weather, deps.Reports} {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/weather", "/api/v1/weather/risk":
		return GroupWeather
	case "/api/v1/reports":
		if c.Request.Method == http.MethodPost {
			return GroupReports
		}
	case "/metrics", "/api/v1/health":
		return "NONE"
	}
	return GroupDefault
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
