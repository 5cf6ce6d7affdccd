package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ContentSelectors is the ordered list of containers likely to hold the job
// description. The first non-empty match wins; tried in order by both the
// static and the rendered fetch tiers.
var ContentSelectors = []string{
	"div[class*='job-description']",
	"div[class*='jobDescription']",
	"div[class*='description']",
	"section[class*='job']",
	"div[class*='job-detail']",
	"div[class*='posting']",
	"div[class*='vacancy']",
	"article",
	"main",
	"[role='main']",
	"div[class*='content']",
}

// HTMLExtractor pulls readable job-description text out of raw HTML
type HTMLExtractor struct {
	removeTags []string
}

// NewHTMLExtractor creates an extractor with the default non-content tag set
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "svg",
			"header", "footer", "nav", "aside", "form",
		},
	}
}

// ExtractText parses html, strips non-content elements, and returns the text
// of the first matching content selector, falling back to the full body.
func (e *HTMLExtractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, tag := range e.removeTags {
		doc.Find(tag).Remove()
	}

	for _, selector := range ContentSelectors {
		var text string
		doc.Find(selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
			if t := strings.TrimSpace(s.Text()); t != "" {
				text = t
				return false
			}
			return true
		})
		if text != "" {
			return CleanText(text), nil
		}
	}

	return CleanText(doc.Find("body").Text()), nil
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// \p{L} keeps accented characters intact for Portuguese postings
	nonTextRe = regexp.MustCompile(`[^\p{L}\p{N}\s.,;:!?'"()\[\]/&%$€£+#@_-]`)
)

// CleanText collapses whitespace runs to single spaces and strips characters
// outside the word/space/basic punctuation set
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = nonTextRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
