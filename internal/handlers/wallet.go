package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casino-sim-backend/internal/models"
	"casino-sim-backend/internal/services"
)

// WalletHandler exposes the balance and the raw delta operation the game
// frame calls to settle bets and wins.
type WalletHandler struct {
	sessions    *services.SessionManager
	broadcaster services.Broadcaster
}

func NewWalletHandler(sessions *services.SessionManager, broadcaster services.Broadcaster) *WalletHandler {
	return &WalletHandler{
		sessions:    sessions,
		broadcaster: broadcaster,
	}
}

func (h *WalletHandler) GetBalance(c *gin.Context) {
	sessionID := c.GetString("session_id")

	user, err := h.sessions.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": gin.H{
			"balance_eur":       user.BalanceEUR,
			"total_wagered_eur": user.TotalWageredEUR,
			"total_won_eur":     user.TotalWonEUR,
			"vip_level":         user.VIPLevel,
		},
	})
}

func (h *WalletHandler) Adjust(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req models.BalanceAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.sessions.ApplyBalanceDelta(c.Request.Context(), sessionID, req.AmountEUR, req.Direction)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust balance"})
		return
	}

	h.broadcaster.BroadcastBalanceUpdate(user)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
