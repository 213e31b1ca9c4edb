package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/records"
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
	rg.GET("/analysis", h.analysis)
	rg.GET("/progress", h.progress)
	rg.GET("/calculators", h.calculators)
}

func (h *Handler) analysis(c *gin.Context) {
	out, err := h.Svc.Analysis(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeLoadError(c, err)
		return
	}
	c.Set(middleware.RecordIDKey, out.RecordID)
	respond.OK(c, out)
}

func (h *Handler) progress(c *gin.Context) {
	out, err := h.Svc.Progress(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeLoadError(c, err)
		return
	}
	respond.OK(c, out)
}

func (h *Handler) calculators(c *gin.Context) {
	out, err := h.Svc.Calculators(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeLoadError(c, err)
		return
	}
	respond.OK(c, out)
}

func writeLoadError(c *gin.Context, err error) {
	if errors.Is(err, records.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "no_assessment", "complete a health assessment first", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load health data", nil)
}
