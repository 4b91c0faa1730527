package parsing

import (
	"bytes"

	"github.com/ledongthuc/pdf"

	"github.com/mkobayashi/resume-matcher/internal/types"
)

// ParsePDF parses a PDF resume from raw bytes. Character content is read
// with position and font metadata, mapped to the fixed-layout input model,
// and parsed as fixed input.
func ParsePDF(data []byte) (types.ParsedResume, error) {
	pages, err := decodePDF(data)
	if err != nil {
		return types.ParsedResume{}, err
	}
	return ParseFixed(pages)
}

// decodePDF extracts per-page positioned characters from PDF bytes.
// PDF y coordinates grow upward from the page bottom, so each character's
// Top is computed against the page's highest baseline to restore a
// downward-growing reading order.
func decodePDF(data []byte) ([]types.Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &EmptyDocumentError{Message: "not a valid PDF", Cause: err}
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, &EmptyDocumentError{Message: "PDF has no pages"}
	}
	if numPages > maxPages {
		numPages = maxPages
	}

	pages := make([]types.Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, types.Page{})
			continue
		}

		content := page.Content()

		maxY := 0.0
		for _, t := range content.Text {
			if t.Y > maxY {
				maxY = t.Y
			}
		}

		chars := make([]types.Char, 0, len(content.Text))
		for _, t := range content.Text {
			chars = append(chars, types.Char{
				Text:     t.S,
				Top:      maxY - t.Y,
				X0:       t.X,
				Size:     t.FontSize,
				FontName: t.Font,
			})
		}
		pages = append(pages, types.Page{Chars: chars})
	}

	return pages, nil
}
