package v1

import (
	"net/http"

	"go-peerrank-backend/config"
	"go-peerrank-backend/internal/delivery/http/middleware"
	"go-peerrank-backend/internal/delivery/http/response"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/usecase"
	"go-peerrank-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	ScoreUC          domain.ScoreUsecase
	LeaderboardUC    domain.LeaderboardUsecase
	VerificationUC   domain.VerificationUsecase
	RecommendationUC domain.RecommendationUsecase
	HealthUC         usecase.HealthUsecase
	RateLimiter      *middleware.RateLimiter
	JWKSProvider     *auth.Provider // nil unless JWT_JWKS_URL is set
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	api := v1.Group("", limiter.Middleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitPerMinute)))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret, deps.JWKSProvider, deps.AuthUC))

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware(deps.Config.AdminKey))

	NewScoreHandler(api, protected, deps.ScoreUC)
	NewLeaderboardHandler(api, deps.LeaderboardUC, deps.Config.LeaderboardMaxLimit,
		limiter.Middleware(middleware.LeaderboardRateLimitConfig(deps.Config.LeaderboardRateLimitPerMinute)))
	NewRecommendationHandler(protected, deps.RecommendationUC)
	NewVerificationHandler(admin, deps.VerificationUC)

	return r
}
