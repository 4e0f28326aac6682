// Package djinni crawls the djinni.co job board: it walks the paginated
// listing, follows every vacancy link and parses each detail page into a
// models.Vacancy.
package djinni

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/vacancies/internal/engine"
)

// Locator names one node of the page markup: the Index-th match of Selector.
// Negative indexes count from the end, so -2 is the second-to-last match.
type Locator struct {
	Field    string
	Selector string
	Index    int
}

// Schema maps every field the crawler reads to its locator.
// A markup change on the site is fixed by editing one entry here.
type Schema struct {
	// Detail page
	Title        Locator
	Company      Locator
	Technologies Locator

	// Listing page
	Pagination Locator
	PageCount  Locator // looked up inside Pagination
	JobLinks   string  // every match, in document order
}

// DefaultSchema returns the locators matching djinni.co's current markup.
//
// Technologies is the second additional-info item; the first one holds the
// experience level. PageCount is the link right before "next".
func DefaultSchema() Schema {
	return Schema{
		Title:        Locator{Field: "title", Selector: "h1", Index: 0},
		Company:      Locator{Field: "company", Selector: ".job-details--title", Index: 0},
		Technologies: Locator{Field: "technologies", Selector: ".job-additional-info--item-text", Index: 1},
		Pagination:   Locator{Field: "pagination", Selector: ".pagination_with_numbers", Index: 0},
		PageCount:    Locator{Field: "page count", Selector: "a.page-link", Index: -2},
		JobLinks:     ".job-list-item__link",
	}
}

// Find returns the located node under root, or an empty selection.
func (l Locator) Find(root *goquery.Selection) *goquery.Selection {
	return root.Find(l.Selector).Eq(l.Index)
}

// Require is Find for mandatory fields: a miss is a structure error.
func (l Locator) Require(root *goquery.Selection) (*goquery.Selection, error) {
	sel := l.Find(root)
	if sel.Length() == 0 {
		return nil, engine.StructureError(fmt.Sprintf("%s not found", l.Field), nil).
			WithDetail("field", l.Field).
			WithDetail("selector", l.Selector).
			WithDetail("index", l.Index)
	}
	return sel, nil
}
