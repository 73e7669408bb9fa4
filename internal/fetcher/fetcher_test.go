package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/rouu123/world-map-name-distribution/internal/model"
)

const sampleCountryHTML = `<html><body>
<div class="content">
  <p>There are approximately 1,234,567 people with surnames in Testland.</p>
  <p>A second paragraph mentioning 999 should be ignored.</p>
</div>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	return doc
}

func TestParseNameCount(t *testing.T) {
	n, ok := ParseNameCount(parseDoc(t, sampleCountryHTML))
	if !ok {
		t.Fatal("expected a count")
	}
	if n != 1234567 {
		t.Errorf("expected 1234567, got %d", n)
	}
}

func TestParseNameCount_NoDigits(t *testing.T) {
	html := `<html><body><p>No figures are available for this country.</p></body></html>`
	if _, ok := ParseNameCount(parseDoc(t, html)); ok {
		t.Error("expected no value for a digit-free paragraph")
	}
}

func TestParseNameCount_NoParagraph(t *testing.T) {
	if _, ok := ParseNameCount(parseDoc(t, "<html><body><div>42</div></body></html>")); ok {
		t.Error("expected no value when no paragraph exists")
	}
}

func TestParseNameCount_FirstParagraphOnly(t *testing.T) {
	html := `<html><body>
<p>This paragraph has no numbers.</p>
<p>There are 7,000 names here.</p>
</body></html>`
	if _, ok := ParseNameCount(parseDoc(t, html)); ok {
		t.Error("only the first paragraph should be consulted")
	}
}

func TestParseNameCount_FirstMatchWins(t *testing.T) {
	html := `<html><body><p>Found 12,345 surnames among 67,890 people.</p></body></html>`
	n, ok := ParseNameCount(parseDoc(t, html))
	if !ok || n != 12345 {
		t.Errorf("expected first match 12345, got %d (ok=%v)", n, ok)
	}
}

func TestParseNameCount_Ungrouped(t *testing.T) {
	html := `<html><body><p>There are 742 recorded names.</p></body></html>`
	n, ok := ParseNameCount(parseDoc(t, html))
	if !ok || n != 742 {
		t.Errorf("expected 742, got %d (ok=%v)", n, ok)
	}
}

func TestFetchNameCount(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(sampleCountryHTML))
	}))
	defer srv.Close()

	f := New(srv.URL, "test-agent", nil)
	n, ok := f.FetchNameCount(context.Background(), "testland", model.Surnames)
	if !ok || n != 1234567 {
		t.Fatalf("expected 1234567, got %d (ok=%v)", n, ok)
	}
	if gotPath != "/testland/surnames" {
		t.Errorf("expected path /testland/surnames, got %q", gotPath)
	}
	if gotAgent != "test-agent" {
		t.Errorf("expected User-Agent test-agent, got %q", gotAgent)
	}
}

func TestFetchNameCount_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(srv.URL, "test-agent", nil)
	if _, ok := f.FetchNameCount(context.Background(), "testland", model.Forenames); ok {
		t.Error("expected no value on HTTP 404")
	}
}

func TestFetchNameCount_TransportError(t *testing.T) {
	// Closed server: the connection error must be swallowed, not propagated.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := New(srv.URL, "test-agent", nil)
	if _, ok := f.FetchNameCount(context.Background(), "testland", model.Surnames); ok {
		t.Error("expected no value on connection failure")
	}
}
