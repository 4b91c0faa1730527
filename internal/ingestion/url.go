package ingestion

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mkobayashi/resume-matcher/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be fetched.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled
	// from the fetched HTML.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting, extracts its text with
// platform-specific selectors, and returns cleaned text with metadata.
// When useBrowser is set and the HTTP fetch yields too little text, the page
// is re-rendered in a headless browser before extraction.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, log *zap.Logger) (string, *Metadata, error) {
	if log == nil {
		log = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	log.Debug("ingesting posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debug("fetched HTML", zap.Int("bytes", len(result.HTML)))

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	log.Debug("extracted text", zap.Int("chars", len(textContent)))

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		log.Debug("content too short, rendering with browser",
			zap.Int("chars", len(textContent)),
			zap.Int("min", fetch.MinContentLength))

		browserHTML, browserErr := fetch.RenderWithBrowser(ctx, urlStr, 30*time.Second, log)
		if browserErr != nil {
			// Keep the HTTP content when the browser is unavailable.
			log.Debug("browser rendering failed", zap.Error(browserErr))
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
			log.Debug("browser extracted text", zap.Int("chars", len(textContent)))
		}
	}

	cleanedText := CleanText(textContent)

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)
	metadata.ExtractedLinks = fetch.ExtractLinks(result.HTML)

	return cleanedText, metadata, nil
}
