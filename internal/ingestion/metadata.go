package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata describes one ingested job posting.
type Metadata struct {
	IngestID       string   `json:"ingest_id"`                 // Unique ID for this ingestion run
	URL            string   `json:"url,omitempty"`             // Source URL, empty for file input
	Timestamp      string   `json:"timestamp"`                 // RFC3339
	Hash           string   `json:"hash"`                      // SHA256 hex digest of the cleaned text
	Platform       string   `json:"platform,omitempty"`        // Detected job board platform
	ExtractedLinks []string `json:"extracted_links,omitempty"` // Absolute links found in the posting
}

// NewMetadata stamps the cleaned content with an ingest ID, timestamp, and
// content hash.
func NewMetadata(content string, url string) *Metadata {
	return &Metadata{
		IngestID:  uuid.NewString(),
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
