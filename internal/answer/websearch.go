package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// MaxSearchResults caps how many search results reach the generation
// prompt, regardless of how many the search oracle returns.
const MaxSearchResults = 10

// WebSearchHandler searches first with the raw query, then asks the
// generation oracle with the search context attached.
type WebSearchHandler struct {
	client      llm.LLMClient
	search      SearchClient
	maxTokens   int
	temperature float64
	logger      *zerolog.Logger
}

func NewWebSearchHandler(client llm.LLMClient, search SearchClient, logger *zerolog.Logger) *WebSearchHandler {
	return &WebSearchHandler{
		client:      client,
		search:      search,
		maxTokens:   1024,
		temperature: 0.2,
		logger:      logger,
	}
}

func (h *WebSearchHandler) Answer(ctx context.Context, query string, history []models.Message) (string, error) {
	results, err := h.search.Search(ctx, query, MaxSearchResults)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}

	h.logger.Debug().
		Int("results", len(results)).
		Msg("search completed")

	prompt := h.buildPrompt(query, history, results)

	response, err := h.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   h.maxTokens,
		Temperature: h.temperature,
	})

	if err != nil {
		return "", fmt.Errorf("generation oracle call failed: %w", err)
	}

	return response.Content, nil
}

func (h *WebSearchHandler) buildPrompt(query string, history []models.Message, results []models.SearchResult) string {
	var sb strings.Builder
	if len(results) == 0 {
		sb.WriteString("No results found.\n")
	}
	for i, result := range results {
		sb.WriteString(fmt.Sprintf("[%d] %s\n%s\n%s\n\n", i+1, result.Title, result.Snippet, result.URL))
	}

	return fmt.Sprintf(`You are a helpful conversational assistant with access to web search results.

Conversation History:
%s

Search Results:
%s
User Question: %s

Answer the question using the search results above where they are relevant. Cite nothing; just answer.`, models.FormatHistory(history), sb.String(), query)
}
