package openweather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

const DefaultURL = "http://api.openweathermap.org/data/2.5/weather"

var ErrUnauthorized = errors.New("openweathermap: API key invalid or not activated")

type StatusError struct {
	StatusCode int
}

func (err StatusError) Error() string {
	return fmt.Sprintf("openweathermap: unexpected status %d", err.StatusCode)
}

type client struct {
	logger     *slog.Logger
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func New(logger *slog.Logger, apiKey string, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return client{
		logger:  logger,
		apiKey:  apiKey,
		baseURL: baseURL,
		//nolint:exhaustruct //other fields are optional
		httpClient: &http.Client{
			Timeout: 10 * time.Second, //nolint:mnd //no magic number
		},
	}
}

func (client client) sendRequest(ctx context.Context, query url.Values, dst any) error {
	u, err := url.Parse(client.baseURL)
	if err != nil {
		return err
	}

	query.Set("appid", client.apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	res, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		client.logger.Info(fmt.Sprintf("Weather API - Status %d", res.StatusCode))
	} else {
		client.logger.Warn(fmt.Sprintf("Weather API - Status %d", res.StatusCode))
	}

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return StatusError{StatusCode: res.StatusCode}
	}

	return httptools.ReadJSON(res.Body, dst)
}
