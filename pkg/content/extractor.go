package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// ArticleExtractor pulls readable text out of a web page, used when the
// operator trains the bot on an article URL
type ArticleExtractor struct {
	client    *http.Client
	userAgent string
}

// NewArticleExtractor creates an extractor with the given timeout
func NewArticleExtractor(timeout time.Duration, userAgent string) *ArticleExtractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Wilbot/1.0)"
	}
	return &ArticleExtractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Extract fetches the URL and returns its main text content
func (e *ArticleExtractor) Extract(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, rawURL)
	}

	result, err := trafilatura.Extract(resp.Body, trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	})
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", rawURL, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return "", fmt.Errorf("no text content extracted from %s", rawURL)
	}

	return strings.TrimSpace(result.ContentText), nil
}
