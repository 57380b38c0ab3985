package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"customer-support-agent/internal/chat"
	pkgLog "customer-support-agent/pkg/log"
)

// Sender delivers a reply to a Telegram chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Close waits for replies that are still being processed.
	Close()
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot Sender

	wg sync.WaitGroup
}

func (h *handler) Close() {
	h.wg.Wait()
}
