package telegram

import (
	"errors"

	"customer-support-agent/internal/chat"
)

// errorMessage returns a user-facing reply for a failed message.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, chat.ErrRateLimited):
		return "You're sending messages a little too quickly. Please wait a moment and try again."
	case errors.Is(err, chat.ErrInvalidMessage):
		return "I couldn't read that message. Please send a shorter text message."
	default:
		return "Something went wrong while handling your request. Please try again."
	}
}
