package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"casino-sim-backend/internal/services"
)

type GameHandler struct {
	catalog *services.Catalog
}

func NewGameHandler(catalog *services.Catalog) *GameHandler {
	return &GameHandler{
		catalog: catalog,
	}
}

func (h *GameHandler) ListGames(c *gin.Context) {
	provider := c.Query("provider")
	category := c.Query("category")

	games := h.catalog.All()
	if provider != "" {
		games = h.catalog.ByProvider(provider)
	} else if category != "" {
		games = h.catalog.ByCategory(category)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"games":   games,
		"count":   len(games),
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	game, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"game":    game,
	})
}

func (h *GameHandler) PopularGames(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"games":   h.catalog.Popular(limit),
	})
}

func (h *GameHandler) LiveGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"games":   h.catalog.Live(),
	})
}

func (h *GameHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"providers": h.catalog.Providers(),
	})
}

func (h *GameHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": services.GameCategories,
	})
}
