// Package fetch retrieves job postings from URLs and reduces them to plain text.
// It knows the DOM layout of the common applicant tracking systems and falls
// back to headless browser rendering for JavaScript-heavy boards.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; aply/1.0)"

// Result holds the raw and processed content of a fetched job posting.
type Result struct {
	URL        string
	Platform   Platform
	HTML       string
	Text       string
	StatusCode int
	// Rendered is true when the text came from a headless browser pass.
	Rendered bool
}

// Error represents a failure while fetching a job posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures job posting retrieval.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// AllowBrowser enables the headless browser fallback for pages that
	// return almost no text over plain HTTP. Requires a local Chromium.
	AllowBrowser bool
	Verbose      bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// JobText fetches a job posting URL and returns its description as plain text.
// It detects the hosting platform, applies platform-specific content and noise
// selectors, and optionally re-renders the page in a headless browser when the
// HTTP response carries too little text to be a real posting.
func JobText(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	platform := DetectPlatform(urlStr)

	result, err := get(ctx, urlStr, opts)
	if err != nil {
		return result, err
	}
	result.Platform = platform

	text, err := ExtractText(result.HTML, ContentSelectors(platform), NoiseSelectors(platform))
	if err != nil {
		return result, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	result.Text = text

	if tooShort(text) && opts.AllowBrowser {
		html, rerr := Render(ctx, urlStr, opts.Timeout, opts.Verbose)
		if rerr != nil {
			return result, &Error{URL: urlStr, Message: "browser fallback failed", Cause: rerr}
		}
		text, err = ExtractText(html, ContentSelectors(platform), NoiseSelectors(platform))
		if err != nil {
			return result, &Error{URL: urlStr, Message: "failed to extract rendered text", Cause: err}
		}
		result.HTML = html
		result.Text = text
		result.Rendered = true
	}

	if tooShort(result.Text) {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("extracted only %d characters; page is likely JavaScript-rendered (retry with browser rendering enabled)", len(strings.TrimSpace(result.Text))),
		}
	}

	return result, nil
}

// minTextLength is the minimum extracted text length to accept a page as a
// real job posting rather than an empty SPA shell.
const minTextLength = 500

func tooShort(text string) bool {
	return len(strings.TrimSpace(text)) < minTextLength
}

// get retrieves raw HTML from a URL.
func get(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:        urlStr,
		HTML:       string(bodyBytes),
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// ExtractText parses HTML and returns the main body text. Noise elements are
// removed first; if none of the content selectors match, the whole body is used.
func ExtractText(html string, contentSelectors, noiseSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
