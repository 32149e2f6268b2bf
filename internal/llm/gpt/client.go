package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client serves the pipeline's oracle calls through the OpenAI chat
// completions API. Transient-failure retry is delegated to the SDK, so no
// backoff state is kept here.
type Client struct {
	Client  openai.Client
	ModelID string
}

func NewClient(apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	openaiClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(3),
	)

	return &Client{
		Client:  openaiClient,
		ModelID: model,
	}, nil
}
