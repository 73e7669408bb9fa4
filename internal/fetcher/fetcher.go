package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/rouu123/world-map-name-distribution/internal/model"
)

// countRe matches the first integer written with comma thousands separators,
// e.g. "12,345,678". A plain digit run still matches its leading group.
var countRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})*`)

// Fetcher retrieves name population figures from the remote site.
type Fetcher struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
	Limiter   *RateLimiter
}

// New creates a Fetcher with the default HTTP client.
func New(baseURL, userAgent string, limiter *RateLimiter) *Fetcher {
	return &Fetcher{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Client:    http.DefaultClient,
		Limiter:   limiter,
	}
}

// FetchNameCount retrieves the population figure for one country and name
// type. Transport failures and parse misses are reported as (0, false);
// failures are logged and never propagated to the caller.
func (f *Fetcher) FetchNameCount(ctx context.Context, countryKey string, nameType model.NameType) (int, bool) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return 0, false
		}
	}

	url := fmt.Sprintf("%s/%s/%s", f.BaseURL, countryKey, nameType)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  WARNING: building request for %s: %v\n", countryKey, err)
		return 0, false
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  WARNING: fetching %s %s: %v\n", countryKey, nameType, err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		fmt.Fprintf(os.Stderr, "  WARNING: %s %s returned status %d\n", countryKey, nameType, resp.StatusCode)
		return 0, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  WARNING: parsing %s %s HTML: %v\n", countryKey, nameType, err)
		return 0, false
	}

	return ParseNameCount(doc)
}

// ParseNameCount extracts the population figure from a page's first
// paragraph. Only the first comma-grouped integer counts; no match is a
// normal "no value" outcome, not an error.
func ParseNameCount(doc *goquery.Document) (int, bool) {
	first := doc.Find("p").First()
	if first.Length() == 0 {
		return 0, false
	}

	match := countRe.FindString(first.Text())
	if match == "" {
		return 0, false
	}

	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
