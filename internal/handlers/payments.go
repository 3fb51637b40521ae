package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"casino-sim-backend/internal/models"
	"casino-sim-backend/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentEngine
}

func NewPaymentHandler(payments *services.PaymentEngine) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
	}
}

func (h *PaymentHandler) Assets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"deposit":  models.DepositAssets,
		"withdraw": models.WithdrawAssets,
	})
}

func (h *PaymentHandler) Deposit(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	payment, err := h.payments.Deposit(c.Request.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create deposit",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payment": payment,
	})
}

func (h *PaymentHandler) Withdraw(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	payment, err := h.payments.Withdraw(c.Request.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create withdrawal",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payment": payment,
	})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	sessionID := c.GetString("session_id")

	payment, err := h.payments.GetPayment(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payment": payment,
	})
}

func (h *PaymentHandler) DepositQR(c *gin.Context) {
	sessionID := c.GetString("session_id")

	payment, err := h.payments.GetPayment(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := h.payments.DepositQR(payment, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *PaymentHandler) History(c *gin.Context) {
	sessionID := c.GetString("session_id")

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	payments, err := h.payments.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"payments": payments,
	})
}
