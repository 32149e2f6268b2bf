package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// Classifier assigns a two-valued category to an incoming question. The
// decision is a single LLM call; the precedence rules (temporal terms and
// recent-years references force the complex branch) are encoded in the
// prompt, so the result is probabilistic from the caller's point of view.
// The only hard guarantee is the two-valued output: any token other than
// "simples" lands on the complex branch.
type Classifier struct {
	client llm.LLMClient
	logger *zerolog.Logger
}

func NewClassifier(client llm.LLMClient, logger *zerolog.Logger) *Classifier {
	return &Classifier{
		client: client,
		logger: logger,
	}
}

func (c *Classifier) Classify(ctx context.Context, query string, history []models.Message) (models.Category, error) {
	prompt := c.buildClassificationPrompt(query, history)

	response, err := c.client.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   10,
		Temperature: 0.0,
	})

	if err != nil {
		return models.CategoryUnclassified, fmt.Errorf("classification oracle call failed: %w", err)
	}

	category := ParseCategory(response.Content)

	c.logger.Debug().
		Str("raw", response.Content).
		Str("category", string(category)).
		Msg("question classified")

	return category, nil
}

// ParseCategory normalizes the oracle token. Anything that is not exactly
// "simples" is treated as complex — unknown tokens take the safer, more
// expensive path.
func ParseCategory(raw string) models.Category {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.Trim(token, `"'.`)

	if token == string(models.CategorySimple) {
		return models.CategorySimple
	}

	return models.CategoryComplex
}

func (c *Classifier) buildClassificationPrompt(query string, history []models.Message) string {
	recent := history
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}

	return fmt.Sprintf(`You are a query complexity classifier for a conversational assistant.

Recent Conversation History:
%s

Current User Question: "%s"

Classify the question as "simples" or "complexa" using these rules, in order:
1. If the question mentions a day, hour, month, year, or any other temporal reference (yesterday, today, last week, recently, ...), answer "complexa".
2. If the question refers to anything from the last two years, answer "complexa".
3. If the question is general conversation or informal chat, answer "simples".
4. Otherwise use your judgment: "simples" for questions answerable from general knowledge, "complexa" for questions that need fresh or external information.

Respond with EXACTLY one word: simples or complexa`, models.FormatHistory(recent), query)
}
