package utils

import "strings"

const (
	BrandSamsung = "Samsung"
	BrandWDBlack = "WD_BLACK"
	BrandUnknown = "Unknown"
)

// ExtractBrand classifies a product name. Matching is case-insensitive and
// the first rule that hits wins.
func ExtractBrand(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "samsung"):
		return BrandSamsung
	case strings.Contains(lower, "wd_black"):
		return BrandWDBlack
	default:
		return BrandUnknown
	}
}
