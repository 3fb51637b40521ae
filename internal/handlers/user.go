package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casino-sim-backend/internal/services"
)

type UserHandler struct {
	sessions *services.SessionManager
}

func NewUserHandler(sessions *services.SessionManager) *UserHandler {
	return &UserHandler{
		sessions: sessions,
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.sessions.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
