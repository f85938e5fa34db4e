package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-peerrank-backend/config"
	_ "go-peerrank-backend/docs" // Important for Swagger
	"go-peerrank-backend/internal/app"
	"go-peerrank-backend/internal/delivery/http/middleware"
	v1 "go-peerrank-backend/internal/delivery/http/v1"
	"go-peerrank-backend/pkg/auth"
	"go-peerrank-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           PeerRank Scoring API
// @version         1.0
// @description     Achievement, recommendation and leaderboard scoring for a peer-ranked academic network.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting peerrank backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database, Cache and UseCases
	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	// 4. Setup Rate Limiter
	limiter := middleware.NewRateLimiter(application.Redis)
	if application.Redis == nil {
		go limiter.Cleanup(ctx, 5*time.Minute)
	}

	// 5. Setup Auth Provider (JWKS), only for RS256 issuers
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           application.AuthUC,
		ScoreUC:          application.ScoreUC,
		LeaderboardUC:    application.LeaderboardUC,
		VerificationUC:   application.VerificationUC,
		RecommendationUC: application.RecommendationUC,
		HealthUC:         application.HealthUC,
		RateLimiter:      limiter,
		JWKSProvider:     jwksProvider,
		Config:           cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
