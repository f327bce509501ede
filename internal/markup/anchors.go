package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gramdiff/internal"
)

// Anchors parses markup into an element tree and returns every <a> with its
// link target and visible text. It satisfies internal.AnchorExtractor; the
// pipeline treats any error here as "capability unavailable" and falls back
// to its text-pattern passes.
func Anchors(text string) ([]internal.Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	out := []internal.Anchor{}
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		out = append(out, internal.Anchor{
			Href: strings.TrimSpace(href),
			Text: strings.TrimSpace(sel.Text()),
		})
	})
	return out, nil
}
