package conversation

import (
	"context"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
)

// Store is the read-only history source the pipeline sees. Writing history
// belongs to the account service; the core never appends.
type Store interface {
	History(ctx context.Context, conversationKey string) ([]models.Message, error)
}

// Recorder is the write side, used only by the account service when it
// persists an exchange.
type Recorder interface {
	Append(ctx context.Context, conversationKey string, message models.Message) error
}
