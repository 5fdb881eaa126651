package websearch

type Result struct {
	Title       string
	URL         string
	Description string
}
