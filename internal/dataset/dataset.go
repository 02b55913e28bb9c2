package dataset

import (
	"github.com/artatlas/curator/internal/artwork"
)

// Document is the on-disk dataset layout: run metadata plus the ordered
// artwork records.
type Document struct {
	Metadata *Metadata        `json:"metadata,omitempty"`
	Artworks []artwork.Record `json:"artworks"`
}

// Metadata describes how and when a dataset file was produced.
type Metadata struct {
	RunID               string   `json:"runId,omitempty"`
	GeneratedAt         string   `json:"generatedAt"`
	TotalArtworks       int      `json:"totalArtworks"`
	Provider            string   `json:"provider,omitempty"`
	Model               string   `json:"model"`
	Version             string   `json:"version"`
	OriginalCount       int      `json:"originalCount"`
	AdditionalGenerated int      `json:"additionalGenerated"`
	Enhancements        []string `json:"enhancements,omitempty"`
}
