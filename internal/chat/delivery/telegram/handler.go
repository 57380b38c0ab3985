package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"customer-support-agent/internal/chat"
	pkgResponse "customer-support-agent/pkg/response"
	pkgTelegram "customer-support-agent/pkg/telegram"
)

const (
	channelTelegram = "telegram"

	welcomeText = "👋 Welcome to customer support!\n\nAsk me about an order (e.g. _Where is ORD12345?_), returns, billing or a technical problem. Send /end to close the conversation."
	helpText    = "*How to use:*\n\nDescribe your issue in plain words. Include your order number when it's about an order.\n\n/start - start a conversation\n/end - end the conversation"
	endText     = "Conversation closed. Send a new message any time."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges at once and runs the pipeline in the background, since Telegram
// retries webhooks that take more than a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		bgCtx := context.WithoutCancel(ctx)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message. Each chat maps to one session.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sessionID := fmt.Sprintf("tg-%d", msg.Chat.ID)
	userID := fmt.Sprintf("telegram_%d", msg.Chat.ID)
	if msg.From != nil {
		userID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	switch text {
	case "/start":
		if _, err := h.start(ctx, sessionID, userID); err != nil {
			return err
		}
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, welcomeText, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
	case "/end":
		if _, err := h.uc.End(ctx, sessionID); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, endText)
	}

	if _, err := h.start(ctx, sessionID, userID); err != nil {
		return err
	}

	out, err := h.uc.SendMessage(ctx, chat.MessageInput{
		SessionID: sessionID,
		UserID:    userID,
		Message:   text,
		Channel:   channelTelegram,
		Metadata:  map[string]string{"telegram_message_id": fmt.Sprint(msg.MessageID)},
	})
	if err != nil {
		return err
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, out.AgentResponse)
}

// start opens the chat's session, resuming it when it is still alive.
func (h *handler) start(ctx context.Context, sessionID, userID string) (chat.StartOutput, error) {
	out, err := h.uc.Start(ctx, chat.StartInput{SessionID: sessionID, UserID: userID, Channel: channelTelegram})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Start failed: %v", err)
	}
	return out, err
}
