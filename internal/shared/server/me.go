package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulseguard-backend/internal/shared/server/middleware"
	"pulseguard-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	respond.OK(c, gin.H{
		"userId":  userID,
		"isGuest": strings.HasPrefix(userID, "guest:"),
	})
}
