package http

import (
	"github.com/gin-gonic/gin"

	"voicetask/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	voice := rg.Group("/voice")
	{
		voice.POST("/parse", mw.RateLimit(), h.Parse)
		voice.POST("/confirm", mw.RateLimit(), h.Confirm)
		voice.DELETE("/sessions/:id", mw.RateLimit(), h.Cancel)
		voice.GET("/stats", mw.RateLimit(), h.Stats)
	}
}
