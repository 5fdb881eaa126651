package mocks

import (
	"context"
	"sync"

	"dashboard.xdoubleu.com/apps/dashboard/pkg/openwebui"
)

const MockedSuggestion = "Go for a run along the Dreisam."

type MockAIClient struct {
	mu       *sync.Mutex
	err      error
	requests []openwebui.ChatCompletionRequest
}

func NewMockAIClient() *MockAIClient {
	return &MockAIClient{mu: &sync.Mutex{}, err: nil, requests: nil}
}

// NewFailingAIClient returns err on every call.
func NewFailingAIClient(err error) *MockAIClient {
	return &MockAIClient{mu: &sync.Mutex{}, err: err, requests: nil}
}

func (client *MockAIClient) ChatCompletion(
	_ context.Context,
	request openwebui.ChatCompletionRequest,
) (*openwebui.ChatCompletionResponse, error) {
	client.mu.Lock()
	client.requests = append(client.requests, request)
	client.mu.Unlock()

	if client.err != nil {
		return nil, client.err
	}

	return &openwebui.ChatCompletionResponse{
		Choices: []openwebui.Choice{
			{Message: openwebui.Message{Role: "assistant", Content: MockedSuggestion}},
		},
	}, nil
}

func (client *MockAIClient) Requests() []openwebui.ChatCompletionRequest {
	client.mu.Lock()
	defer client.mu.Unlock()

	result := make([]openwebui.ChatCompletionRequest, len(client.requests))
	copy(result, client.requests)
	return result
}
