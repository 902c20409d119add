package handlers

import (
	"time"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *ConsoleHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))
	router.SetHTMLTemplate(views.Templates())

	router.GET("/", h.Index)
	router.POST("/actions/:action", h.RunAction)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	return router
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("http")
	if logger != nil {
		l = logger.Named("http")
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
