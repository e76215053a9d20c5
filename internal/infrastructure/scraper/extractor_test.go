package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractTextPrefersArticleNode(t *testing.T) {
	t.Parallel()

	html := `
	<html><body>
	  <nav>Site navigation</nav>
	  <div class="sidebar-widget">Trending now</div>
	  <article><p>The summit concluded on Tuesday.</p><p>Both sides signed the accord.</p></article>
	  <footer>Copyright</footer>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	text := ExtractText(doc)
	if text != "The summit concluded on Tuesday. Both sides signed the accord." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextStripsNoiseByClassAndID(t *testing.T) {
	t.Parallel()

	html := `
	<html><body>
	  <main>
	    <div id="comments-block">User comment noise</div>
	    <div class="related-articles">More stories</div>
	    <p>Parliament approved the budget.</p>
	  </main>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	text := ExtractText(doc)
	if strings.Contains(text, "comment") || strings.Contains(text, "More stories") {
		t.Fatalf("noise survived extraction: %q", text)
	}
	if !strings.Contains(text, "Parliament approved the budget.") {
		t.Fatalf("content lost: %q", text)
	}
}

func TestFetchReturnsExtractedText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article><p>Extracted body.</p></article><script>noise()</script></body></html>`))
	}))
	defer server.Close()

	extractor := NewExtractor(server.Client())
	text, err := extractor.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if text != "Extracted body." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFetchFailsWithoutContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>only_noise()</script></body></html>`))
	}))
	defer server.Close()

	extractor := NewExtractor(server.Client())
	if _, err := extractor.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error when nothing extractable")
	}
}

func TestFetchFailsOnBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	extractor := NewExtractor(server.Client())
	if _, err := extractor.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error on 404")
	}
}
