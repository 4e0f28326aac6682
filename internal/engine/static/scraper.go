// internal/engine/static/scraper.go
package static

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/vacancies/internal/engine"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// Scraper implements engine.Fetcher for static HTML pages.
// It issues plain GET requests and parses the body with goquery.
type Scraper struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// New creates a new static Scraper with dependency injection
func New(client *http.Client, ua string, logger zerolog.Logger) *Scraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &Scraper{
		client:    client,
		userAgent: ua,
		logger:    logger,
	}
}

// Name returns the name of this scraper
func (s *Scraper) Name() string {
	return "StaticScraper"
}

// Fetch retrieves and parses a static HTML page
func (s *Scraper) Fetch(ctx context.Context, rawURL string, query url.Values) (*goquery.Document, error) {
	start := time.Now()

	target, err := withQuery(rawURL, query)
	if err != nil {
		return nil, engine.NetworkError(rawURL, err)
	}

	s.logger.Debug().
		Str("url", target).
		Str("scraper", s.Name()).
		Msg("Starting fetch")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, engine.NetworkError(target, fmt.Errorf("failed to create request: %w", err))
	}

	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, engine.NetworkError(target, fmt.Errorf("failed to fetch URL: %w", err))
	}
	defer resp.Body.Close()

	// Decode to UTF-8 before parsing; the Content-Type header and <meta> tags decide the source charset
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, engine.NetworkError(target, fmt.Errorf("failed to decode body: %w", err))
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, engine.NetworkError(target, fmt.Errorf("failed to parse HTML: %w", err))
	}

	s.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", time.Since(start).Milliseconds()).
		Msg("Fetch completed")

	return doc, nil
}

// withQuery merges query into the query string already present on rawURL
func withQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
