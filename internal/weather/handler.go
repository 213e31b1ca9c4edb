package weather

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/weather", h.lookup)
	rg.POST("/weather/risk", h.risk)
}

type riskRequest struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}

func (h *Handler) lookup(c *gin.Context) {
	out, err := h.Svc.Lookup(c.Request.Context(), c.Query("city"))
	if err != nil {
		switch {
		case errors.Is(err, ErrCityRequired):
			respond.Error(c, http.StatusBadRequest, "invalid_input", "city query parameter is required", nil)
		case errors.Is(err, ErrCityNotFound):
			respond.Error(c, http.StatusNotFound, "city_not_found", "Could not fetch weather data. Check city name.", nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "weather_unavailable", "weather lookups are not configured", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "weather_upstream_error", "weather provider request failed", nil)
		}
		return
	}
	respond.OK(c, out)
}

func (h *Handler) risk(c *gin.Context) {
	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be JSON", nil)
		return
	}
	var missing []respond.FieldError
	if req.Temperature == nil {
		missing = append(missing, respond.FieldError{Field: "temperature", Reason: "required"})
	}
	if req.Humidity == nil {
		missing = append(missing, respond.FieldError{Field: "humidity", Reason: "required"})
	}
	if len(missing) > 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "temperature and humidity are required", missing)
		return
	}
	respond.OK(c, h.Svc.Assess(*req.Temperature, *req.Humidity))
}
