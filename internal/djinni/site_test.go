package djinni

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/law-makers/vacancies/internal/engine/static"
	"github.com/rs/zerolog"
)

// testSite serves listing pages under /jobs/ (selected by the page query
// parameter, "" for the first page) and detail pages by path.
type testSite struct {
	server   *httptest.Server
	listings map[string]string
	details  map[string]string

	mu       sync.Mutex
	requests []string
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	site := &testSite{
		listings: make(map[string]string),
		details:  make(map[string]string),
	}
	site.server = httptest.NewServer(http.HandlerFunc(site.serve))
	t.Cleanup(site.server.Close)
	return site
}

func (s *testSite) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.RequestURI())
	s.mu.Unlock()

	var (
		html string
		ok   bool
	)
	if r.URL.Path == "/jobs/" {
		html, ok = s.listings[r.URL.Query().Get("page")]
	} else {
		html, ok = s.details[r.URL.Path]
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *testSite) listingURL() string {
	return s.server.URL + "/jobs/?primary_keyword=Python"
}

func (s *testSite) baseURL() string {
	return s.server.URL + "/"
}

func (s *testSite) requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *testSite) walker(logger zerolog.Logger, progress Progress) *Walker {
	fetcher := static.New(&http.Client{}, "TestScraper/1.0", logger)
	return NewWalker(fetcher, Options{
		ListingURL: s.listingURL(),
		BaseURL:    s.baseURL(),
		Schema:     DefaultSchema(),
		Progress:   progress,
	}, logger)
}

func detailHTML(title, company, experience, technologies string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>%[1]s</title></head>
<body>
	<h1>
		%[1]s
	</h1>
	<div class="job-details--title">
		%[2]s
	</div>
	<ul>
		<li><span class="job-additional-info--item-text">%[3]s</span></li>
		<li><span class="job-additional-info--item-text">
			%[4]s
		</span></li>
	</ul>
</body>
</html>`, title, company, experience, technologies)
}

func paginationHTML(labels ...string) string {
	var b strings.Builder
	b.WriteString(`<ul class="pagination pagination_with_numbers">`)
	for _, label := range labels {
		fmt.Fprintf(&b, `<li class="page-item"><a class="page-link" href="?page=%s">%s</a></li>`, label, label)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func listingHTML(pagination string, hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><body><ul class=\"list-jobs\">")
	for _, href := range hrefs {
		fmt.Fprintf(&b, `<li class="list-jobs__item"><a class="job-list-item__link" href="%s">vacancy</a></li>`, href)
	}
	b.WriteString("</ul>")
	b.WriteString(pagination)
	b.WriteString("</body></html>")
	return b.String()
}
