package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"casino-sim-backend/internal/config"
	"casino-sim-backend/internal/handlers"
	"casino-sim-backend/internal/middleware"
	"casino-sim-backend/internal/services"
)

func main() {
	logger := logrus.New()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	store, err := services.NewRedisStore(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	jwtService := services.NewJWTService(cfg)
	sessionManager := services.NewSessionManager(store, logger)
	catalog := services.NewCatalog()

	wsHandler := handlers.NewWebSocketHandler(sessionManager, logger)

	paymentEngine := services.NewPaymentEngine(
		store, sessionManager, wsHandler, logger,
		cfg.DepositAddress, cfg.DepositConfirmDelay, cfg.WithdrawProcessDelay)

	authHandler := handlers.NewAuthHandler(sessionManager, jwtService, logger)
	userHandler := handlers.NewUserHandler(sessionManager)
	walletHandler := handlers.NewWalletHandler(sessionManager, wsHandler)
	gameHandler := handlers.NewGameHandler(catalog)
	paymentHandler := handlers.NewPaymentHandler(paymentEngine)

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(store))
	{
		protected.GET("/me", userHandler.GetCurrentUser)
		protected.POST("/logout", userHandler.Logout)

		protected.GET("/ws", wsHandler.HandleWebSocket)

		wallet := protected.Group("/wallet")
		{
			wallet.GET("/balance", walletHandler.GetBalance)
			wallet.POST("/adjust", walletHandler.Adjust)
		}

		games := protected.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.GET("/popular", gameHandler.PopularGames)
			games.GET("/live", gameHandler.LiveGames)
			games.GET("/providers", gameHandler.Providers)
			games.GET("/categories", gameHandler.Categories)
			games.GET("/:id", gameHandler.GetGame)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("/assets", paymentHandler.Assets)
			payments.POST("/deposit", paymentHandler.Deposit)
			payments.GET("/deposit/:id", paymentHandler.GetPayment)
			payments.GET("/deposit/:id/qr", paymentHandler.DepositQR)
			payments.POST("/withdraw", paymentHandler.Withdraw)
			payments.GET("/history", paymentHandler.History)
		}
	}

	logger.Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
