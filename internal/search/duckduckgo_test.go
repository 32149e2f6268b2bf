package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "golang" {
			t.Errorf("Expected query 'golang', got %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("Expected format 'json', got %q", got)
		}

		fmt.Fprint(w, `{
			"Heading": "Go",
			"AbstractText": "Go is a programming language.",
			"AbstractURL": "https://golang.org",
			"RelatedTopics": [
				{"Text": "Gopher", "FirstURL": "https://example.com/gopher"},
				{"Text": "", "FirstURL": "https://example.com/empty"},
				{"Text": "Goroutine", "FirstURL": "https://example.com/goroutine"}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	client.endpoint = server.URL + "/"

	results, err := client.Search(context.Background(), "golang", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	// Abstract plus the two non-empty related topics.
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Title != "Go" || results[0].Snippet != "Go is a programming language." {
		t.Errorf("Unexpected abstract result %+v", results[0])
	}
	if results[1].URL != "https://example.com/gopher" {
		t.Errorf("Unexpected first topic result %+v", results[1])
	}
}

func TestSearch_RespectsMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"AbstractText": "",
			"RelatedTopics": [
				{"Text": "one", "FirstURL": "https://example.com/1"},
				{"Text": "two", "FirstURL": "https://example.com/2"},
				{"Text": "three", "FirstURL": "https://example.com/3"},
				{"Text": "four", "FirstURL": "https://example.com/4"}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	client.endpoint = server.URL + "/"

	results, err := client.Search(context.Background(), "anything", 2)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(results))
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	client.endpoint = server.URL + "/"

	if _, err := client.Search(context.Background(), "anything", 10); err == nil {
		t.Fatal("Expected error on upstream 500")
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	client.endpoint = server.URL + "/"

	if _, err := client.Search(context.Background(), "anything", 10); err == nil {
		t.Fatal("Expected error on malformed response body")
	}
}
