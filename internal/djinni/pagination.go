package djinni

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/vacancies/internal/engine"
)

// PageCount reads the number of listing pages from the first listing page.
//
// Without a pagination widget the result set fits on one page. Otherwise the
// count is the label of the PageCount locator (by default the second-to-last
// page link, the one before "next"). It is a positional read, not a search
// for the largest number on the page.
func PageCount(doc *goquery.Document, schema Schema) (int, error) {
	pagination := schema.Pagination.Find(doc.Selection)
	if pagination.Length() == 0 {
		return 1, nil
	}

	link, err := schema.PageCount.Require(pagination)
	if err != nil {
		return 0, err
	}

	label := strings.TrimSpace(link.Text())
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, engine.StructureError(fmt.Sprintf("page count label %q is not a number", label), err).
			WithDetail("field", schema.PageCount.Field).
			WithDetail("selector", schema.PageCount.Selector)
	}
	return n, nil
}
