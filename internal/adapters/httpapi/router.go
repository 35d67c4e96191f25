package httpapi

import (
	"net/http"
	"time"

	"github.com/bnema/graph-presence-cli/internal/adapters/metrics"
	"github.com/bnema/graph-presence-cli/internal/logging"
	"github.com/gin-gonic/gin"
)

const subsystem = "httpapi"

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(requestLog(h.Metrics), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.Warn(subsystem, "recovered panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	api := r.Group("/api")
	api.POST("/token", h.Token)
	api.POST("/presence", h.Presence)

	r.GET("/healthz", h.Health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	return r
}

// requestLog writes one line per request. Bodies are never logged.
func requestLog(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		logging.Info(subsystem, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start).Round(time.Millisecond))
		if m != nil {
			m.ObserveRequest(route, status, start)
		}
	}
}
