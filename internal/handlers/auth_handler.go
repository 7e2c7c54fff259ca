package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/auth"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/httpresp"
	"github.com/BruksfildServices01/quickcut/internal/middleware"
	"github.com/BruksfildServices01/quickcut/internal/models"
)

type AuthHandler struct {
	auth  *auth.Service
	audit *audit.Dispatcher
}

func NewAuthHandler(svc *auth.Service, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{auth: svc, audit: dispatcher}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.auth.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
			return
		}
		writeError(c, err, "login_failed")
		return
	}

	httpresp.OK(c, gin.H{
		"token":    res.Token,
		"username": res.Session.Username,
		"login_at": res.Session.LoginAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), c.GetString(middleware.ContextSessionID)); err != nil {
		writeError(c, err, "logout_failed")
		return
	}

	httpresp.NoContent(c)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	strength, err := h.auth.ChangePassword(c.Request.Context(), c.GetString(middleware.ContextSessionID), auth.ChangePasswordInput{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
		Confirm: req.ConfirmPassword,
	})
	if err != nil {
		writeError(c, err, "password_change_failed")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:  "password_changed",
		Entity:  "credentials",
		Message: "Admin password changed; other sessions were signed out",
		Type:    models.NotificationWarning,
	})

	httpresp.OK(c, gin.H{
		"message":  "Password updated.",
		"strength": strength,
	})
}
