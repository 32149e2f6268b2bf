package answer

import (
	"context"
	"errors"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
)

// ErrSearchFailed marks a handler failure caused by the search oracle, so
// the pipeline can apply the degrade-to-direct policy when configured.
var ErrSearchFailed = errors.New("search failed")

// Handler is one answer-generation strategy. Implementations share no
// per-request state and are safe for concurrent use.
type Handler interface {
	Answer(ctx context.Context, query string, history []models.Message) (string, error)
}

// SearchClient is the call boundary to the search oracle.
type SearchClient interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}
