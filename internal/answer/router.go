package answer

import "github.com/povarna/generative-ai-agents/chat-agent/internal/models"

type HandlerKind string

const (
	HandlerDirect    HandlerKind = "direct"
	HandlerWebSearch HandlerKind = "web_search"
)

// Route maps the classifier's category to the handler to invoke. Pure and
// total: only "simples" takes the direct path; every other value, including
// tokens the oracle was never supposed to emit, lands on the web-search
// path. Unknown defaults to the more expensive handler on purpose.
func Route(category models.Category) HandlerKind {
	if category == models.CategorySimple {
		return HandlerDirect
	}

	return HandlerWebSearch
}
