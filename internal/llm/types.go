package llm

// LLMRequest is one prompt for the oracle behind LLMClient. The same shape
// serves generation, moderation, and classification calls; they differ only
// in prompt, token budget, and temperature.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// LLMResponse is the oracle's text plus why it stopped producing it.
type LLMResponse struct {
	Content    string
	StopReason string
}
