package djinni

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/vacancies/internal/engine"
	"github.com/law-makers/vacancies/pkg/models"
	"github.com/rs/zerolog"
)

// Extractor turns one vacancy detail page into a models.Vacancy
type Extractor struct {
	fetcher engine.Fetcher
	schema  Schema
	logger  zerolog.Logger
}

// NewExtractor creates an Extractor reading pages through fetcher
func NewExtractor(fetcher engine.Fetcher, schema Schema, logger zerolog.Logger) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		schema:  schema,
		logger:  logger,
	}
}

// Extract fetches detailURL and parses it.
// Network and structure errors are returned unchanged in kind.
func (e *Extractor) Extract(ctx context.Context, detailURL string) (models.Vacancy, error) {
	doc, err := e.fetcher.Fetch(ctx, detailURL, nil)
	if err != nil {
		return models.Vacancy{}, fmt.Errorf("fetch vacancy: %w", err)
	}

	vacancy, err := ParseVacancy(doc, e.schema)
	if err != nil {
		var ee *engine.EngineError
		if errors.As(err, &ee) {
			ee.WithDetail("url", detailURL)
		}
		return models.Vacancy{}, fmt.Errorf("parse vacancy %s: %w", detailURL, err)
	}

	e.logger.Debug().
		Str("url", detailURL).
		Str("title", vacancy.Title).
		Int("technologies", len(vacancy.Technologies)).
		Msg("Vacancy parsed")

	return vacancy, nil
}

// ParseVacancy reads the title, company and technologies of a detail page
func ParseVacancy(doc *goquery.Document, schema Schema) (models.Vacancy, error) {
	title, err := schema.Title.Require(doc.Selection)
	if err != nil {
		return models.Vacancy{}, err
	}
	company, err := schema.Company.Require(doc.Selection)
	if err != nil {
		return models.Vacancy{}, err
	}
	technologies, err := schema.Technologies.Require(doc.Selection)
	if err != nil {
		return models.Vacancy{}, err
	}

	return models.Vacancy{
		Title:        cleanTitle(title.Text()),
		Company:      strings.TrimSpace(company.Text()),
		Technologies: splitTechnologies(technologies.Text()),
	}, nil
}

func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "$", "")
}

// splitTechnologies turns "Python, Django,\n PostgreSQL" into [Python Django PostgreSQL]
func splitTechnologies(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.Split(s, ",")
}
