package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-agent/pkg/response"
)

// Detail godoc
// @Summary     Get user profile
// @Description Returns what recent conversations tell about a user: interaction count, last intent, mood and issue.
// @Tags        Users
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/users/{user_id}/profile [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	p, ok := h.profiles.Get(userID)
	if !ok {
		h.l.Debugf(ctx, "internal.profile.delivery.http.Detail: user=%s has no profile", userID)
		response.Error(c, errProfileNotFound, nil)
		return
	}

	response.OK(c, newProfileResp(p))
}
