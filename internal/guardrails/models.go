package guardrails

import "github.com/povarna/generative-ai-agents/chat-agent/internal/models"

// ValidationResult is the outcome of one validator layer.
type ValidationResult struct {
	IsValid  bool   // true = allowed ; false = blocked
	Reason   string // Why the content was blocked
	Category string // "toxic", "prompt_injection", "pii", ...
	Method   string // "static" or "llm"
}

func (r ValidationResult) Verdict(role models.Role) models.ModerationVerdict {
	return models.ModerationVerdict{
		Allowed: r.IsValid,
		Role:    role,
		Reason:  r.Reason,
	}
}
