package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Htttpkaran/ai-resume-checker/internal/analyses"
	"github.com/Htttpkaran/ai-resume-checker/internal/services/health"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/config"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/middleware"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, analysisHandler *analyses.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.MaxBody(cfg.MaxUploadBytes),
	)

	healthSvc := health.NewService()

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Check())
	})
	analysisHandler.RegisterRoutes(api)

	registerNoRoute(r, cfg)

	return r
}

// registerNoRoute serves the prebuilt frontend bundle in production when
// present, and answers everything else with the JSON 404 envelope.
func registerNoRoute(r *gin.Engine, cfg config.Config) {
	staticDir := ""
	if cfg.Env == "production" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			staticDir = cfg.StaticDir
			r.Static("/assets", filepath.Join(staticDir, "assets"))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if staticDir != "" && c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			// SPA fallback: client-side routes all resolve to index.html.
			c.File(filepath.Join(staticDir, "index.html"))
			return
		}
		respond.JSON(c, http.StatusNotFound, respond.ErrorResponse{Success: false, Error: "Endpoint not found"})
	})
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
