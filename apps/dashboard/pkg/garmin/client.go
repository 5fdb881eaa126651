package garmin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"golang.org/x/net/publicsuffix"
)

const (
	SSOURL     = "https://sso.garmin.com/sso"
	ConnectURL = "https://connect.garmin.com"
)

var ErrAuthentication = errors.New("garmin: authentication failed")

//nolint:gochecknoglobals //compiled once
var (
	csrfRegexp   = regexp.MustCompile(`name="_csrf"\s+value="([^"]+)"`)
	ticketRegexp = regexp.MustCompile(`ticket=([^"&]+)`)
)

type client struct {
	logger      *slog.Logger
	email       string
	password    string
	ssoURL      string
	connectURL  string
	httpClient  *http.Client
	mu          sync.Mutex
	displayName string
}

func New(logger *slog.Logger, email string, password string) Client {
	return NewWithBaseURLs(logger, email, password, SSOURL, ConnectURL)
}

func NewWithBaseURLs(
	logger *slog.Logger,
	email string,
	password string,
	ssoURL string,
	connectURL string,
) Client {
	//nolint:exhaustruct //other fields are optional
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	return &client{
		logger:     logger,
		email:      email,
		password:   password,
		ssoURL:     ssoURL,
		connectURL: connectURL,
		//nolint:exhaustruct //other fields are optional
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second, //nolint:mnd //no magic number
		},
		mu:          sync.Mutex{},
		displayName: "",
	}
}

// login exchanges the credentials for an SSO ticket and redeems it for a
// Connect session cookie.
func (client *client) login(ctx context.Context) error {
	service := fmt.Sprintf("%s/modern", client.connectURL)

	query := url.Values{}
	query.Set("service", service)
	query.Set("embed", "true")
	signInURL := fmt.Sprintf("%s/signin?%s", client.ssoURL, query.Encode())

	page, err := client.fetchPage(ctx, http.MethodGet, signInURL, nil)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("username", client.email)
	form.Set("password", client.password)
	form.Set("embed", "true")
	if match := csrfRegexp.FindStringSubmatch(page); match != nil {
		form.Set("_csrf", match[1])
	}

	page, err = client.fetchPage(
		ctx,
		http.MethodPost,
		signInURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return err
	}

	match := ticketRegexp.FindStringSubmatch(page)
	if match == nil {
		return ErrAuthentication
	}

	_, err = client.fetchPage(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s?ticket=%s", service, url.QueryEscape(match[1])),
		nil,
	)
	if err != nil {
		return err
	}

	var profile SocialProfile
	err = client.getJSON(ctx, "userprofile-service/socialProfile", &profile)
	if err != nil {
		return err
	}

	client.displayName = profile.DisplayName
	client.logger.Debug("garmin session established")

	return nil
}

func (client *client) fetchPage(
	ctx context.Context,
	method string,
	target string,
	body io.Reader,
) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return "", err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := client.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized, res.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrAuthentication, res.StatusCode)
	case res.StatusCode >= http.StatusBadRequest:
		return "", fmt.Errorf("garmin: unexpected status %d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (client *client) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/modern/proxy/%s", client.connectURL, endpoint),
		nil,
	)
	if err != nil {
		return err
	}

	req.Header.Set("NK", "NT")

	res, err := client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		client.logger.Info(fmt.Sprintf("Garmin API - Status %d", res.StatusCode))
	} else {
		client.logger.Warn(fmt.Sprintf("Garmin API - Status %d", res.StatusCode))
	}

	switch res.StatusCode {
	case http.StatusOK:
		return httptools.ReadJSON(res.Body, dst)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthentication
	default:
		return fmt.Errorf("garmin: unexpected status %d", res.StatusCode)
	}
}

// sendRequest logs in lazily and retries once when the session expired.
func (client *client) sendRequest(
	ctx context.Context,
	endpoint func(displayName string) string,
	dst any,
) error {
	client.mu.Lock()
	defer client.mu.Unlock()

	if client.displayName == "" {
		if err := client.login(ctx); err != nil {
			return err
		}
	}

	err := client.getJSON(ctx, endpoint(client.displayName), dst)
	if !errors.Is(err, ErrAuthentication) {
		return err
	}

	client.displayName = ""
	if err = client.login(ctx); err != nil {
		return err
	}

	return client.getJSON(ctx, endpoint(client.displayName), dst)
}
