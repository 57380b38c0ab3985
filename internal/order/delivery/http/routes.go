package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:order_id", h.Detail)
	}
}
