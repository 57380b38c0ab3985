package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-agent/pkg/response"
)

// Summary godoc
// @Summary     Get conversation analytics
// @Description Returns totals since start-up: requests by intent, sentiment and escalation level, plus degraded and flagged counts.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/analytics [GET]
func (h *handler) Summary(c *gin.Context) {
	response.OK(c, newSnapshotResp(h.totals.Snapshot()))
}
