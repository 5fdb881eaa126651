package openwebui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

const ChatCompletionsEndpoint = "/api/v1/chat/completions"

type APIError struct {
	StatusCode int
	Message    string
}

func (err APIError) Error() string {
	return fmt.Sprintf("open webui: status %d: %s", err.StatusCode, err.Message)
}

type errorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// newAPIError uses error.message of the body, or the raw body when the
// body is not an error object.
func newAPIError(statusCode int, body []byte) APIError {
	message := strings.TrimSpace(string(body))

	var response errorResponse
	if err := json.Unmarshal(body, &response); err == nil &&
		response.Error != nil && response.Error.Message != "" {
		message = response.Error.Message
	}

	return APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

type client struct {
	logger     *slog.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(
	logger *slog.Logger,
	baseURL string,
	apiKey string,
	timeout time.Duration,
) Client {
	return client{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		//nolint:exhaustruct //other fields are optional
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (client client) sendRequest(
	ctx context.Context,
	endpoint string,
	body any,
	dst any,
) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		client.baseURL+endpoint,
		bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", client.apiKey))
	req.Header.Set("Content-Type", "application/json")

	res, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		client.logger.Warn(fmt.Sprintf("Open WebUI API - Status %d", res.StatusCode))

		body, _ := io.ReadAll(res.Body)
		return newAPIError(res.StatusCode, body)
	}

	client.logger.Info(fmt.Sprintf("Open WebUI API - Status %d", res.StatusCode))

	return httptools.ReadJSON(res.Body, dst)
}
