package answer

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// DirectHandler answers from the generation oracle alone, with the query
// and the serialized conversation history.
type DirectHandler struct {
	client      llm.LLMClient
	maxTokens   int
	temperature float64
	logger      *zerolog.Logger
}

func NewDirectHandler(client llm.LLMClient, logger *zerolog.Logger) *DirectHandler {
	return &DirectHandler{
		client:      client,
		maxTokens:   1024,
		temperature: 0.2,
		logger:      logger,
	}
}

func (h *DirectHandler) Answer(ctx context.Context, query string, history []models.Message) (string, error) {
	prompt := h.buildPrompt(query, history)

	response, err := h.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   h.maxTokens,
		Temperature: h.temperature,
	})

	if err != nil {
		return "", fmt.Errorf("generation oracle call failed: %w", err)
	}

	h.logger.Debug().
		Str("stop_reason", response.StopReason).
		Msg("direct handler produced answer")

	return response.Content, nil
}

func (h *DirectHandler) buildPrompt(query string, history []models.Message) string {
	return fmt.Sprintf(`You are a helpful conversational assistant.

Conversation History:
%s

User Question: %s

Answer the question directly and concisely.`, models.FormatHistory(history), query)
}
