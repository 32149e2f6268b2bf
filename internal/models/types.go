package models

import (
	"fmt"
	"strings"
	"time"
)

// Category is the classifier's verdict for a question. The tokens are the
// literal values the classification oracle emits.
type Category string

const (
	CategoryUnclassified Category = ""
	CategorySimple       Category = "simples"
	CategoryComplex      Category = "complexa"
)

// Role identifies who authored a piece of content. The moderation oracle
// applies different policies per role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ConversationState is the per-request pipeline state. Created fresh for
// every call, mutated in place by the pipeline stages, discarded once the
// answer is returned. Category is set exactly once before any handler runs;
// Answer is set exactly once, by exactly one handler.
type ConversationState struct {
	Query    string
	Category Category
	Answer   string
	History  []Message
}

// ModerationVerdict is the boolean the pipeline inspects; the oracle may
// attach a reason for logging.
type ModerationVerdict struct {
	Allowed bool
	Role    Role
	Reason  string
}

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// FormatHistory serializes prior messages for inclusion in oracle prompts.
func FormatHistory(history []Message) string {
	if len(history) == 0 {
		return "None"
	}

	var sb strings.Builder
	for _, msg := range history {
		sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}

	return sb.String()
}
