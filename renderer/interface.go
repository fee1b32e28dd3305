package renderer

// Surface is the page the renderer writes into. Keeping the page behind this
// interface lets the markup and structured data be built without a document.
type Surface interface {
	// ReplaceContent swaps the inner markup of the element with the given id.
	// It reports false, and changes nothing, when no such element exists.
	ReplaceContent(containerID string, markup string) bool
	// ReplaceHeadScript puts a script element carrying markerID into the
	// page head, removing any earlier script with the same marker first.
	ReplaceHeadScript(markerID, scriptType, body string) error
}
