package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/config"
	"github.com/koheiarai-crypto/ai-proxy/handler"
	"github.com/koheiarai-crypto/ai-proxy/metrics"
	"github.com/koheiarai-crypto/ai-proxy/middleware"
)

// Routes maps each mount path to the upstream it proxies. The paths match the
// serverless deployment so clients work against either.
var Routes = map[string]handler.Upstream{
	"/api/gemini": handler.ImageGeneration,
	"/api/openai": handler.ChatCompletion,
}

// NewRouter builds the gin engine used when running as a long-lived server.
func NewRouter(cfg *config.Config, client *backend.Client, rec *metrics.Recorder, routes map[string]handler.Upstream) *gin.Engine {
	if cfg.Mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})
	router.GET(cfg.MetricsPath, gin.WrapH(rec.Handler()))

	// Every method reaches the proxy so it can answer 405 itself.
	for path, upstream := range routes {
		router.Any(path, gin.WrapH(handler.NewProxy(upstream, client, rec)))
	}

	return router
}
