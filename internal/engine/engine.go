package engine

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves a page and returns it as a queryable document.
//
// query is merged into the URL's existing query string; nil leaves it as is.
// Transport failures are reported as ErrCodeNetwork errors.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, query url.Values) (*goquery.Document, error)

	// Name returns the name of the fetcher implementation
	Name() string
}
