package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "customer-support-agent/pkg/errors"
)

func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	// an empty body starts an anonymous session
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, nil
}

func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, req.validate()
}

func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, req.validate()
}
