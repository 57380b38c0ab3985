package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"customer-support-agent/internal/chat"
	"customer-support-agent/pkg/response"
)

// Start godoc
// @Summary     Start a chat session
// @Description Opens a session. Without user_id an anonymous user id is generated.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body startReq false "Session options"
// @Success     200 {object} startResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Start(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStartResp(out))
}

// Message godoc
// @Summary     Send a message
// @Description Runs the support pipeline on the message and returns the verified reply with its metadata.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrRateLimited) {
			response.TooManyRequests(c)
			return
		}
		h.l.Warnf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMessageResp(out))
}

// History godoc
// @Summary     Get conversation history
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/history/{session_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.History(ctx, c.Param("session_id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newHistoryResp(out))
}

// End godoc
// @Summary     End a chat session
// @Description Drops the session together with any pending escalation.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} endResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat/end/{session_id} [POST]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.End(ctx, c.Param("session_id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.End: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEndResp(out))
}

// ActiveSessions godoc
// @Summary     List active sessions
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} activeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sessions/active [GET]
func (h *handler) ActiveSessions(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ActiveSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ActiveSessions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newActiveResp(out))
}

// ConfirmEscalation godoc
// @Summary     Confirm or decline an escalation
// @Description Delivers a human agent's answer for the session's pending escalation.
// @Tags        Escalation
// @Accept      json
// @Produce     json
// @Param       body body confirmReq true "Agent decision"
// @Success     200 {object} confirmResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/escalation/confirm [POST]
func (h *handler) ConfirmEscalation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ConfirmEscalation(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ConfirmEscalation: %v", err)
		var data map[string]interface{}
		if errors.Is(err, chat.ErrEscalationResolved) {
			data = map[string]interface{}{"escalation_status": string(out.EscalationStatus)}
		}
		response.Error(c, h.mapError(err), data)
		return
	}

	response.OK(c, newConfirmResp(out))
}
