package parsing

import "fmt"

// UnsupportedFormatError indicates a file extension the parser cannot route.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: use .docx or .pdf", e.Extension)
}

// EmptyDocumentError indicates a document with no extractable pages or
// paragraphs.
type EmptyDocumentError struct {
	Message string
	Cause   error
}

func (e *EmptyDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("empty or corrupt document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("empty or corrupt document: %s", e.Message)
}

func (e *EmptyDocumentError) Unwrap() error {
	return e.Cause
}

// ScannedDocumentError indicates a fixed-layout document with zero
// extractable non-whitespace characters, which signals scanned images
// rather than text.
type ScannedDocumentError struct{}

func (e *ScannedDocumentError) Error() string {
	return "this document appears to contain scanned images rather than text; " +
		"upload a text-based PDF or convert to .docx"
}
