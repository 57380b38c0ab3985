package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-agent/pkg/response"
)

// Detail godoc
// @Summary     Get order status
// @Description Returns a single order by its id (e.g. ORD12345).
// @Tags        Orders
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/orders/{order_id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	rec, err := h.uc.Fetch(ctx, c.Param("order_id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Fetch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, detailResp{Order: newOrderResp(rec)})
}

// List godoc
// @Summary     Search orders
// @Description Returns a paginated list of orders filtered by status, customer name or email.
// @Tags        Orders
// @Produce     json
// @Param       status         query string false "Order status (e.g. Shipped)"
// @Param       customer_name  query string false "Customer name (substring)"
// @Param       customer_email query string false "Customer email (substring)"
// @Param       limit          query int    false "Page size (default: 20)"
// @Param       offset         query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/orders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}
