package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list orders query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
