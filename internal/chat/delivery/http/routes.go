package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	c := rg.Group("/chat")
	{
		c.POST("/start", h.Start)
		c.POST("/message", h.Message)
		c.GET("/history/:session_id", h.History)
		c.POST("/end/:session_id", h.End)
	}

	rg.GET("/sessions/active", h.ActiveSessions)
	rg.POST("/escalation/confirm", h.ConfirmEscalation)
}
