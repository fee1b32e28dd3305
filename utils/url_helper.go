package utils

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// LinkClient is used by ResolveShortenedURL; tests may swap it
var LinkClient = &http.Client{Timeout: 15 * time.Second}

// Storefront domains a resolved affiliate link may land on
var amazonDomains = []string{
	"amazon.com", "amazon.ca", "amazon.com.mx", "amazon.com.br",
	"amazon.co.uk", "amazon.de", "amazon.fr", "amazon.it", "amazon.es",
	"amazon.nl", "amazon.se", "amazon.pl", "amazon.com.be", "amazon.com.tr",
	"amazon.ae", "amazon.sa", "amazon.eg", "amazon.in", "amazon.co.jp",
	"amazon.sg", "amazon.com.au",
}

// ResolveShortenedURL follows redirects to find the final URL.
// A final page that does not answer 2xx is an error.
func ResolveShortenedURL(ctx context.Context, url string) (string, error) {
	resp, err := doRequest(ctx, http.MethodHead, url)
	if err != nil || resp.StatusCode != http.StatusOK {
		// Some hosts reject HEAD, so fall back to GET
		if resp != nil {
			resp.Body.Close()
		}
		resp, err = doRequest(ctx, http.MethodGet, url)
		if err != nil {
			return url, err
		}
	}
	defer resp.Body.Close()

	final := resp.Request.URL.String()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return final, fmt.Errorf("link resolved to %s with status %d", final, resp.StatusCode)
	}
	return final, nil
}

func doRequest(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return LinkClient.Do(req)
}

// IsAmazonHost reports whether a resolved link points at an Amazon storefront
func IsAmazonHost(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	for _, d := range amazonDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
