package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe echoes the identity the auth middleware resolved.
func (h *MeHandler) GetMe(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error_code": "user_not_in_context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":   username,
		"session_id": c.GetString(middleware.ContextSessionID),
	})
}
