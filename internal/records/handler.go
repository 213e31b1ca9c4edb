package records

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/healthmetrics"
	"pulseguard-backend/internal/shared/server/middleware"
	"pulseguard-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assessment/defaults", h.defaults)
	rg.POST("/assessment", h.submit)
	rg.GET("/assessment/current", h.current)
	rg.GET("/assessment/history", h.history)
}

func (h *Handler) defaults(c *gin.Context) {
	respond.OK(c, Defaults())
}

func (h *Handler) submit(c *gin.Context) {
	var hr healthmetrics.HealthRecord
	if err := c.ShouldBindJSON(&hr); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be a health record", nil)
		return
	}

	rec, err := h.Svc.Submit(c.Request.Context(), middleware.UserIDFromContext(c), hr)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", "health record failed validation", verr.Fields)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store assessment", nil)
		return
	}
	c.Set(middleware.RecordIDKey, rec.ID)
	respond.Created(c, rec)
}

func (h *Handler) current(c *gin.Context) {
	rec, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no assessment submitted yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load assessment", nil)
		return
	}
	c.Set(middleware.RecordIDKey, rec.ID)
	respond.OK(c, rec)
}

func (h *Handler) history(c *gin.Context) {
	items, err := h.Svc.History(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		return
	}
	if items == nil {
		items = []Record{}
	}
	respond.OK(c, gin.H{"items": items, "limit": h.Svc.historyLimit()})
}
