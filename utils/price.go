package utils

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Digits are required before the optional fraction; "$5." yields "5".
var priceAmountRe = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)

const pricePrefix = "Harga"

// ParsePrice extracts the amount following the first "$" in a label such as
// "Harga -33% $133.49". The amount keeps its original digits ("133.49").
// The boolean is false when the label carries no amount.
func ParsePrice(priceString string) (string, bool) {
	match := priceAmountRe.FindStringSubmatch(priceString)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

// FormatPrice turns a raw price label into display markup. A leading
// discount segment ("-33%") is wrapped in a discount badge span and the rest
// of the label follows it; labels without a discount are shown as-is.
func FormatPrice(priceString string) template.HTML {
	cleaned := strings.TrimSpace(strings.Replace(priceString, pricePrefix, "", 1))
	parts := strings.Fields(cleaned)

	if len(parts) > 1 && strings.Contains(parts[0], "%") {
		discount := html.EscapeString(parts[0])
		price := html.EscapeString(strings.Join(parts[1:], " "))
		return template.HTML(`<span class="discount">` + discount + `</span> ` + price)
	}

	return template.HTML(html.EscapeString(cleaned))
}
