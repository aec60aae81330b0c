package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-pricing/internal/handler/api"
	"hotel-pricing/internal/handler/middleware"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, clk clock.Clock, pricingHandler *api.PricingHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, logger, clk, pricingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, logger *slog.Logger, clk clock.Clock, pricingHandler *api.PricingHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewRateLimiter(cfg.RateLimit, logger, clk))
	{
		hotels := apiGroup.Group("/hotels/:hotelId")
		addRoutes(hotels, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: pricingHandler.Quote},
			{Method: http.MethodPost, Path: "/availability", Handler: pricingHandler.Availability},
			{Method: http.MethodPost, Path: "/cancellation-fees", Handler: pricingHandler.CancellationFees},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Handle(r.Method, r.Path, r.Handler)
		}
	}
}
