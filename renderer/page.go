package renderer

import (
	"io"

	"github.com/raushankrgupta/affiliate-showcase/renderer/dom"
)

// RenderPage parses a host page, renders into it and returns the result.
// A host page without a product grid still gets the structured data.
func (r *Renderer) RenderPage(hostPage io.Reader) (string, error) {
	doc, err := dom.Load(hostPage)
	if err != nil {
		return "", err
	}
	if err := r.Render(doc); err != nil {
		return "", err
	}
	return doc.HTML()
}
