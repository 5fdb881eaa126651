package openwebui

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("open webui: response contained no choices")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

func (response ChatCompletionResponse) Content() (string, error) {
	if len(response.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return response.Choices[0].Message.Content, nil
}

func (client client) ChatCompletion(
	ctx context.Context,
	request ChatCompletionRequest,
) (*ChatCompletionResponse, error) {
	var response ChatCompletionResponse

	err := client.sendRequest(ctx, ChatCompletionsEndpoint, request, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
