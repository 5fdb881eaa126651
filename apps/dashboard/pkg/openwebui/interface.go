package openwebui

import "context"

type Client interface {
	ChatCompletion(
		ctx context.Context,
		request ChatCompletionRequest,
	) (*ChatCompletionResponse, error)
}
