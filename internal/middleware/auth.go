package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickcut/internal/auth"
	"github.com/BruksfildServices01/quickcut/internal/httperr"
)

const (
	ContextSessionID = "sessionID"
	ContextUsername  = "username"
)

// AuthMiddleware resolves the bearer token to a live admin session.
func AuthMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authorization header is required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Expected a Bearer token.")
			return
		}

		sess, err := svc.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		switch {
		case errors.Is(err, auth.ErrSessionExpired):
			httperr.Abort(c, http.StatusUnauthorized, "session_expired", "Session expired after inactivity. Please log in again.")
			return
		case errors.Is(err, auth.ErrInvalidToken):
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Invalid or revoked token.")
			return
		case err != nil:
			httperr.Abort(c, http.StatusInternalServerError, "session_lookup_failed", "Could not verify the session.")
			return
		}

		c.Set(ContextSessionID, sess.ID)
		c.Set(ContextUsername, sess.Username)

		c.Next()
	}
}
