package reports

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/records"
	"pulseguard-backend/internal/shared/server/middleware"
	"pulseguard-backend/internal/shared/server/respond"
	"pulseguard-backend/internal/shared/telemetry"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.create)
	rg.GET("/reports/:id", h.download)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rep, queued, err := h.Svc.Request(c.Request.Context(), userID, middleware.RequestIDFromContext(c))
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "no_assessment", "complete a health assessment first", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create report", nil)
		return
	}
	c.Set(middleware.ReportIDKey, rep.ID)
	if queued {
		respond.Accepted(c, rep)
		return
	}
	respond.Created(c, rep)
}

func (h *Handler) download(c *gin.Context) {
	reportID := c.Param("id")
	c.Set(middleware.ReportIDKey, reportID)

	rc, rep, err := h.Svc.Open(c.Request.Context(), middleware.UserIDFromContext(c), reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		case errors.Is(err, ErrNotReady):
			c.Header("Retry-After", "2")
			respond.Accepted(c, rep)
		case errors.Is(err, ErrFailed):
			respond.Error(c, http.StatusConflict, "report_failed", "report generation failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open report", nil)
		}
		return
	}
	defer rc.Close()

	c.Header("Content-Type", ContentType)
	c.Header("Content-Disposition", `attachment; filename="`+FileName+`"`)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		telemetry.Error("report.stream_failed", map[string]any{"report_id": reportID, "error": err.Error()})
	}
}
