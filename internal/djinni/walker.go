package djinni

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/vacancies/internal/engine"
	urlutil "github.com/law-makers/vacancies/internal/utils/url"
	"github.com/law-makers/vacancies/pkg/models"
	"github.com/rs/zerolog"
)

// Progress observes a crawl. Implementations must not block.
type Progress interface {
	PageStarted(page, total int)
	VacancyCollected(v models.Vacancy)
}

type nopProgress struct{}

func (nopProgress) PageStarted(int, int)            {}
func (nopProgress) VacancyCollected(models.Vacancy) {}

// Options configures a Walker
type Options struct {
	// ListingURL is the first listing page, including the keyword filter
	ListingURL string
	// BaseURL resolves the relative vacancy links found on listing pages
	BaseURL  string
	Schema   Schema
	Progress Progress
}

// Walker visits every listing page in order and extracts every vacancy on it
type Walker struct {
	fetcher    engine.Fetcher
	extractor  *Extractor
	schema     Schema
	listingURL string
	baseURL    string
	progress   Progress
	logger     zerolog.Logger
}

// NewWalker creates a Walker. A nil opts.Progress is replaced by a no-op.
func NewWalker(fetcher engine.Fetcher, opts Options, logger zerolog.Logger) *Walker {
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}
	return &Walker{
		fetcher:    fetcher,
		extractor:  NewExtractor(fetcher, opts.Schema, logger),
		schema:     opts.Schema,
		listingURL: opts.ListingURL,
		baseURL:    opts.BaseURL,
		progress:   progress,
		logger:     logger,
	}
}

// vacancyList accumulates vacancies in crawl order for a single Collect call
type vacancyList struct {
	items []models.Vacancy
}

func (l *vacancyList) add(v models.Vacancy) {
	l.items = append(l.items, v)
}

func (l *vacancyList) vacancies() []models.Vacancy {
	if l.items == nil {
		return []models.Vacancy{}
	}
	return l.items
}

// Collect walks all listing pages and returns their vacancies, page by page
// and in document order within a page. The first error aborts the walk and
// nothing collected so far is returned.
func (w *Walker) Collect(ctx context.Context) ([]models.Vacancy, error) {
	first, err := w.fetcher.Fetch(ctx, w.listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch listing page 1: %w", err)
	}

	numPages, err := PageCount(first, w.schema)
	if err != nil {
		return nil, fmt.Errorf("read page count: %w", err)
	}
	w.logger.Debug().Int("pages", numPages).Str("url", w.listingURL).Msg("Pagination resolved")

	var list vacancyList

	w.progress.PageStarted(1, numPages)
	if err := w.collectPage(ctx, first, &list); err != nil {
		return nil, fmt.Errorf("listing page 1: %w", err)
	}

	for page := 2; page <= numPages; page++ {
		w.logger.Info().Msgf("Start parsing page number: %d", page)
		w.progress.PageStarted(page, numPages)

		doc, err := w.fetcher.Fetch(ctx, w.listingURL, url.Values{"page": {strconv.Itoa(page)}})
		if err != nil {
			return nil, fmt.Errorf("fetch listing page %d: %w", page, err)
		}
		if err := w.collectPage(ctx, doc, &list); err != nil {
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}
	}

	return list.vacancies(), nil
}

func (w *Walker) collectPage(ctx context.Context, doc *goquery.Document, list *vacancyList) error {
	links, err := w.detailLinks(doc)
	if err != nil {
		return err
	}
	w.logger.Debug().Int("links", len(links)).Msg("Vacancy links found")

	for _, link := range links {
		vacancy, err := w.extractor.Extract(ctx, link)
		if err != nil {
			return err
		}
		list.add(vacancy)
		w.progress.VacancyCollected(vacancy)
	}
	return nil
}

// detailLinks returns the absolute vacancy URLs of a listing page in document order
func (w *Walker) detailLinks(doc *goquery.Document) ([]string, error) {
	nodes := doc.Find(w.schema.JobLinks)
	links := make([]string, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		href, _ := nodes.Eq(i).Attr("href")
		link, err := urlutil.ResolveURL(w.baseURL, href)
		if err != nil {
			return nil, engine.StructureError("bad vacancy link", err).WithDetail("href", href)
		}
		links = append(links, link)
	}
	return links, nil
}
