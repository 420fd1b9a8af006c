// Package report reads the run summary back out of a generated HTML report.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sentinel errors for report inspection.
var (
	// ErrNotAReport indicates the HTML has no summary section.
	ErrNotAReport = errors.New("document is not a test report")

	// ErrInvalidCounter indicates a summary cell that is not a count.
	ErrInvalidCounter = errors.New("invalid summary counter")
)

// Selectors for the parts of the report written by the bundled template.
const (
	summarySelector = "section#summary"
	resultSelector  = "tr.result"
	failedSelector  = "tr.result.failed td.name"
	outcomeAttr     = "data-outcome"
)

// Summary is the run overview shown at the top of a report.
type Summary struct {
	Title       string
	Outcome     string
	Total       int
	Passed      int
	Failed      int
	NotExecuted int

	// Results is the number of result rows in the report.
	Results int

	// FailedTests lists failed test names in report order.
	FailedTests []string
}

// String renders a one-line overview.
func (s *Summary) String() string {
	var b strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&b, "%s: ", s.Title)
	}
	fmt.Fprintf(&b, "%d total, %d passed, %d failed, %d not executed", s.Total, s.Passed, s.Failed, s.NotExecuted)
	if s.Outcome != "" {
		fmt.Fprintf(&b, " (%s)", s.Outcome)
	}
	return b.String()
}

// Inspect parses an HTML report and extracts its summary.
func Inspect(html []byte) (*Summary, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}

	section := doc.Find(summarySelector).First()
	if section.Length() == 0 {
		return nil, ErrNotAReport
	}

	summary := &Summary{
		Title:   strings.TrimSpace(doc.Find("head title").First().Text()),
		Outcome: strings.TrimSpace(section.AttrOr(outcomeAttr, "")),
		Results: doc.Find(resultSelector).Length(),
	}

	counters := []struct {
		id  string
		dst *int
	}{
		{"total", &summary.Total},
		{"passed", &summary.Passed},
		{"failed", &summary.Failed},
		{"notexecuted", &summary.NotExecuted},
	}
	for _, c := range counters {
		n, err := counter(section, c.id)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	doc.Find(failedSelector).Each(func(_ int, sel *goquery.Selection) {
		summary.FailedTests = append(summary.FailedTests, strings.TrimSpace(sel.Text()))
	})

	return summary, nil
}

// InspectFile reads and inspects the report at path.
func InspectFile(path string) (*Summary, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path is the report just written
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return Inspect(content)
}

// counter reads the integer in the summary cell with the given id.
// A missing cell counts as zero.
func counter(section *goquery.Selection, id string) (int, error) {
	cell := section.Find("#" + id).First()
	if cell.Length() == 0 {
		return 0, nil
	}

	text := strings.TrimSpace(cell.Text())
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s = %q", ErrInvalidCounter, id, text)
	}
	return n, nil
}
