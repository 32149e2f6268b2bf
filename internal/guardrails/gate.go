package guardrails

import (
	"context"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
	"github.com/rs/zerolog"
)

// Gate decides allow/block for a piece of text. It is invoked on the inbound
// question and, when output moderation is enabled, on the generated answer,
// with the role telling the oracle who authored the content.
type Gate struct {
	staticValidator *StaticValidator
	llmValidator    *LLMValidator
	failOpen        bool
	logger          *zerolog.Logger
}

func NewGate(client llm.LLMClient, banWords []string, failOpen bool, logger *zerolog.Logger) *Gate {
	return &Gate{
		staticValidator: NewStaticValidator(banWords),
		llmValidator:    NewLLMValidator(client),
		failOpen:        failOpen,
		logger:          logger,
	}
}

// Check runs static rules first (fast, free), then the LLM validator. An
// oracle error is returned to the pipeline unless the gate is configured to
// fail open; it never silently allows.
func (g *Gate) Check(ctx context.Context, role models.Role, content string) (models.ModerationVerdict, error) {
	result := g.staticValidator.Validate(content)
	if !result.IsValid {
		g.logger.Info().
			Str("method", result.Method).
			Str("role", string(role)).
			Str("reason", result.Reason).
			Msg("content blocked by static rules")
		return result.Verdict(role), nil
	}

	result, err := g.llmValidator.Validate(ctx, role, content)
	if err != nil {
		if g.failOpen {
			g.logger.Warn().
				Err(err).
				Str("role", string(role)).
				Msg("moderation oracle unavailable, configured to fail open")
			return models.ModerationVerdict{Allowed: true, Role: role, Reason: "validation unavailable"}, nil
		}
		return models.ModerationVerdict{}, err
	}

	if !result.IsValid {
		g.logger.Warn().
			Str("method", result.Method).
			Str("role", string(role)).
			Str("category", result.Category).
			Str("reason", result.Reason).
			Msg("content blocked by llm validator")
	}

	return result.Verdict(role), nil
}
