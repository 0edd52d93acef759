package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analysis"
	"ats-backend/internal/extract"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, llmClient llm.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	svc := &analysis.Service{
		Extractor: extract.New(),
		LLM:       llmClient,
	}
	handler := analysis.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Every analysis request is an outbound LLM call, so those routes sit
	// behind a per-IP token bucket.
	analyses := api.Group("")
	analyses.Use(middleware.RateLimit(middleware.RateLimitRule{Rate: 0.5, Burst: 3}, middleware.NewRateLimiter(nil)))
	handler.RegisterRoutes(analyses)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
