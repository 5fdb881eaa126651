package websearch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	DefaultURL = "https://www.google.com/search"
	userAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

type client struct {
	logger  *slog.Logger
	baseURL string
	timeout time.Duration
}

func New(logger *slog.Logger, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return client{
		logger:  logger,
		baseURL: baseURL,
		timeout: 10 * time.Second, //nolint:mnd //no magic number
	}
}

// Search scrapes the organic results of a search page in page order.
// Results without a title or link are left out.
func (client client) Search(ctx context.Context, query string) ([]Result, error) {
	u, err := url.Parse(client.baseURL)
	if err != nil {
		return nil, err
	}

	values := u.Query()
	values.Set("q", query)
	u.RawQuery = values.Encode()

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(client.timeout)

	results := []Result{}
	c.OnHTML("div.g", func(h *colly.HTMLElement) {
		title := h.ChildText("h3")
		if title == "" || h.DOM.Find("a").Length() == 0 {
			return
		}

		results = append(results, Result{
			Title:       title,
			URL:         h.ChildAttr("a", "href"),
			Description: h.ChildText("div.VwiC3b"),
		})
	})

	c.OnResponse(func(r *colly.Response) {
		client.logger.Info(fmt.Sprintf("Web search - Status %d", r.StatusCode))
	})

	c.OnError(func(r *colly.Response, err error) {
		client.logger.Warn(
			fmt.Sprintf("Web search - Status %d", r.StatusCode),
			"error", err.Error(),
		)
	})

	err = c.Visit(u.String())
	if err != nil {
		return nil, err
	}

	return results, nil
}
