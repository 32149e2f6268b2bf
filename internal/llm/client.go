package llm

import (
	"context"
)

// LLMClient is the call boundary to a text-generation model. Implementations
// must be safe for concurrent use; the pipeline shares one client across all
// in-flight requests.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
