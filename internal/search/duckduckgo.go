package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/povarna/generative-ai-agents/chat-agent/internal/models"
)

const defaultEndpoint = "https://api.duckduckgo.com/"

// Client queries the DuckDuckGo instant-answer API. It carries no per-query
// state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   defaultEndpoint,
	}
}

type duckDuckGoResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// Search returns up to maxResults ranked results for the raw query.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var ddgResponse duckDuckGoResponse
	if err := json.Unmarshal(body, &ddgResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	var results []models.SearchResult

	if ddgResponse.AbstractText != "" {
		results = append(results, models.SearchResult{
			Title:   ddgResponse.Heading,
			Snippet: ddgResponse.AbstractText,
			URL:     ddgResponse.AbstractURL,
		})
	}

	for _, topic := range ddgResponse.RelatedTopics {
		if len(results) >= maxResults {
			break
		}
		if topic.Text == "" {
			continue
		}
		results = append(results, models.SearchResult{
			Title:   topic.Text,
			Snippet: topic.Text,
			URL:     topic.FirstURL,
		})
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return results, nil
}
