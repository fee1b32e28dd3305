package web

import _ "embed"

// IndexHTML is the default host page. Its #product-grid is empty until rendered.
//
//go:embed index.html
var IndexHTML string
