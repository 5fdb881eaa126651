package mocks

import (
	"context"
	"sync"

	"dashboard.xdoubleu.com/apps/localevents/pkg/websearch"
)

type MockSearchClient struct {
	mu      *sync.Mutex
	results []websearch.Result
	err     error
	queries []string
}

// NewMockSearchClient answers every query with a marathon, a video and a
// club result.
func NewMockSearchClient() *MockSearchClient {
	return NewMockSearchClientWithResults([]websearch.Result{
		{
			Title:       "Freiburg Marathon registration",
			URL:         "https://www.freiburg-marathon.de/anmeldung",
			Description: "Register for the marathon and half marathon.",
		},
		{
			Title:       "Marathon highlights",
			URL:         "https://www.youtube.com/watch?v=abc",
			Description: "Video",
		},
		{
			Title:       "Lauftreff Freiburg running club",
			URL:         "https://www.lauftreff-freiburg.de/",
			Description: "",
		},
	})
}

func NewMockSearchClientWithResults(results []websearch.Result) *MockSearchClient {
	return &MockSearchClient{
		mu:      &sync.Mutex{},
		results: results,
		err:     nil,
		queries: []string{},
	}
}

// NewFailingSearchClient returns err on every query.
func NewFailingSearchClient(err error) *MockSearchClient {
	client := NewMockSearchClientWithResults(nil)
	client.err = err
	return client
}

func (client *MockSearchClient) Search(
	_ context.Context,
	query string,
) ([]websearch.Result, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	client.queries = append(client.queries, query)

	if client.err != nil {
		return nil, client.err
	}

	return client.results, nil
}

func (client *MockSearchClient) Queries() []string {
	client.mu.Lock()
	defer client.mu.Unlock()

	queries := make([]string, len(client.queries))
	copy(queries, client.queries)
	return queries
}
