package ui

import (
	"fmt"
	"io"

	"github.com/law-makers/vacancies/pkg/models"
	"github.com/schollz/progressbar/v3"
)

// Progress renders crawl progress as a spinner with a running vacancy count.
// The total is unknown until every page has been read, so no percentage is shown.
type Progress struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// NewProgress creates a progress display writing to out (normally stderr)
func NewProgress(out io.Writer) *Progress {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("listing"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar, out: out}
}

// PageStarted updates the description with the current listing page
func (p *Progress) PageStarted(page, total int) {
	p.bar.Describe(fmt.Sprintf("%spage %d/%d%s", ColorCyan, page, total, ColorReset))
}

// VacancyCollected counts one parsed vacancy
func (p *Progress) VacancyCollected(models.Vacancy) {
	_ = p.bar.Add(1)
}

// Done clears the spinner and prints the result line
func (p *Progress) Done(count int, path string, err error) {
	_ = p.bar.Finish()
	if err != nil {
		fmt.Fprintln(p.out, Error("✗ crawl failed: "+err.Error()))
		return
	}
	fmt.Fprintln(p.out, Success(fmt.Sprintf("✓ Saved %d vacancies to %s", count, path)))
}
