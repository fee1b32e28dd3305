package dom

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed host page that the renderer can write into
type Document struct {
	doc *goquery.Document
}

// Load parses a host page
func Load(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse host page: %w", err)
	}
	return &Document{doc: doc}, nil
}

func LoadString(page string) (*Document, error) {
	return Load(strings.NewReader(page))
}

// ReplaceContent sets the inner HTML of #containerID
func (d *Document) ReplaceContent(containerID string, markup string) bool {
	container := d.doc.Find("#" + containerID).First()
	if container.Length() == 0 {
		return false
	}
	container.SetHtml(markup)
	return true
}

// ReplaceHeadScript removes any script already tagged with markerID and
// appends a fresh one to <head>.
func (d *Document) ReplaceHeadScript(markerID, scriptType, body string) error {
	if strings.Contains(strings.ToLower(body), "</script") {
		return fmt.Errorf("script body for %s contains a closing script tag", markerID)
	}

	d.doc.Find(fmt.Sprintf(`script[id=%q]`, markerID)).Remove()

	head := d.doc.Find("head").First()
	if head.Length() == 0 {
		return fmt.Errorf("host page has no head element")
	}
	head.AppendHtml(fmt.Sprintf(`<script type="%s" id="%s">%s</script>`,
		html.EscapeString(scriptType), html.EscapeString(markerID), body))
	return nil
}

// HTML serializes the whole page
func (d *Document) HTML() (string, error) {
	out, err := d.doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize page: %w", err)
	}
	return out, nil
}

// Selection exposes the parsed page so callers can query the rendered
// result with goquery selectors, e.g. to count product cards. Changes made
// through it bypass the Surface methods and are not tracked.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}
