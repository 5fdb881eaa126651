package gcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("google calendar not configured")

type client struct {
	service *calendar.Service
}

// New builds a client from an OAuth client credentials file and a token
// file holding a previously authorized oauth2.Token. Refreshed tokens are
// written back to the token file.
func New(
	ctx context.Context,
	logger *slog.Logger,
	credentialsFile string,
	tokenFile string,
) (Client, error) {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: credentials file %q not found", ErrNotConfigured, credentialsFile)
	}

	oauthConfig, err := google.ConfigFromJSON(credentials, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}

	token, err := readToken(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w: token file %q unusable: %w", ErrNotConfigured, tokenFile, err)
	}

	tokenSource := &fileTokenSource{
		logger: logger,
		path:   tokenFile,
		base:   oauthConfig.TokenSource(ctx, token),
		last:   token,
		mu:     sync.Mutex{},
	}

	service, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return NewFromService(service), nil
}

func NewFromService(service *calendar.Service) Client {
	return client{
		service: service,
	}
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	err = json.Unmarshal(data, &token)
	if err != nil {
		return nil, err
	}

	return &token, nil
}

type fileTokenSource struct {
	logger *slog.Logger
	path   string
	base   oauth2.TokenSource
	last   *oauth2.Token
	mu     sync.Mutex
}

func (source *fileTokenSource) Token() (*oauth2.Token, error) {
	token, err := source.base.Token()
	if err != nil {
		return nil, err
	}

	source.mu.Lock()
	defer source.mu.Unlock()

	if source.last != nil && source.last.AccessToken == token.AccessToken {
		return token, nil
	}
	source.last = token

	data, err := json.Marshal(token)
	if err != nil {
		return nil, err
	}

	//nolint:mnd //owner read/write only
	err = os.WriteFile(source.path, data, 0o600)
	if err != nil {
		source.logger.Warn("failed to persist refreshed token", logging.ErrAttr(err))
	}

	return token, nil
}
