package websearch

import "context"

type Client interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
