package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skystore/skystore/internal/infrastructure/sessions"
)

const userIDKey = "user_id"

// SessionAuth resolves the session cookie to a user ID and stores it in
// the request context. Missing, unknown or expired sessions abort with
// 401.
func (h *Handlers) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(h.cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		userID, err := h.sessions.GetUserID(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			h.respondError(c, err)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID reads the authenticated user's ID set by SessionAuth.
func currentUserID(c *gin.Context) uuid.UUID {
	value, _ := c.Get(userIDKey)
	userID, _ := value.(uuid.UUID)
	return userID
}
