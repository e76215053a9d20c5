package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"BiasDetector/internal/ports"
)

// noiseKeywords flags class/id fragments that mark non-article chrome.
var noiseKeywords = []string{
	"comment", "reply", "sidebar", "widget", "related",
	"ads", "recommended", "share", "menu",
}

// Extractor fetches a page and pulls out readable article text. It strips
// script/navigation noise, drops chrome-classed nodes, then prefers the
// <article> container, falling back to <main> and finally <body>.
type Extractor struct {
	client *http.Client
}

var _ ports.TextSource = (*Extractor)(nil)

// NewExtractor wires an HTTP client; a nil client gets a 15s timeout default.
func NewExtractor(client *http.Client) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Extractor{client: client}
}

// Fetch downloads the locator and returns the extracted article text, or a
// descriptive error when no extractable content is found.
func (e *Extractor) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	text := ExtractText(doc)
	if text == "" {
		return "", fmt.Errorf("no extractable content at %s", rawURL)
	}

	return text, nil
}

// ExtractText runs the noise-stripping extraction over a parsed document.
func ExtractText(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, aside, form, iframe, noscript").Remove()

	doc.Find("[class]").Each(func(i int, s *goquery.Selection) {
		if containsNoise(strings.ToLower(s.AttrOr("class", ""))) {
			s.Remove()
		}
	})
	doc.Find("[id]").Each(func(i int, s *goquery.Selection) {
		if containsNoise(strings.ToLower(s.AttrOr("id", ""))) {
			s.Remove()
		}
	})

	node := doc.Find("article").First()
	if node.Length() == 0 {
		node = doc.Find("main").First()
	}
	if node.Length() == 0 {
		node = doc.Find("body").First()
	}
	if node.Length() == 0 {
		return ""
	}

	return strings.Join(strings.Fields(node.Text()), " ")
}

func containsNoise(attr string) bool {
	for _, keyword := range noiseKeywords {
		if strings.Contains(attr, keyword) {
			return true
		}
	}
	return false
}
