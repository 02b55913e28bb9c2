package artwork

import (
	"strings"
)

// Category classifies an artwork record.
type Category string

const (
	CategoryPainting     Category = "painting"
	CategorySculpture    Category = "sculpture"
	CategoryArchitecture Category = "architecture"
)

// Categories returns all categories in their canonical generation order.
func Categories() []Category {
	return []Category{CategoryPainting, CategorySculpture, CategoryArchitecture}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPainting, CategorySculpture, CategoryArchitecture:
		return true
	}
	return false
}

// Scores holds the five curatorial ratings, each in [0,10].
type Scores struct {
	HistoricalSignificance int `json:"historicalSignificance"`
	CulturalImpact         int `json:"culturalImpact"`
	TechnicalInnovation    int `json:"technicalInnovation"`
	PedagogicalValue       int `json:"pedagogicalValue"`
	DiversityContribution  int `json:"diversityContribution"`
}

// Record is one artwork entry in the dataset. IDs are assigned only when the
// final merged dataset is written, never during generation.
type Record struct {
	ID                 int      `json:"id,omitempty"`
	Title              string   `json:"title"`
	Artist             string   `json:"artist"`
	Year               Year     `json:"year"`
	Category           Category `json:"category"`
	Medium             string   `json:"medium,omitempty"`
	Location           string   `json:"location,omitempty"`
	Region             string   `json:"region,omitempty"`
	Period             string   `json:"period,omitempty"`
	Movement           string   `json:"movement,omitempty"`
	Scores             Scores   `json:"scores"`
	SelectionRationale string   `json:"selectionRationale,omitempty"`
	ImageURL           string   `json:"imageUrl,omitempty"`
}

// Key returns the deduplication identity for r.
func (r Record) Key() string {
	return NormalizeKey(r.Artist, r.Title)
}

// NormalizeKey derives the identity key for an artist/title pair. Comparison
// is case-insensitive and whitespace-trimmed; missing values degrade to the
// empty string rather than failing.
func NormalizeKey(artist, title string) string {
	return strings.ToLower(strings.TrimSpace(artist)) + ":" + strings.ToLower(strings.TrimSpace(title))
}

// KeySet tracks identity keys that are already taken.
type KeySet map[string]struct{}

// NewKeySet builds a key set from the given records.
func NewKeySet(records []Record) KeySet {
	set := make(KeySet, len(records))
	for _, record := range records {
		set.Add(record.Key())
	}
	return set
}

// Contains reports whether key is in the set.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s KeySet) Clone() KeySet {
	clone := make(KeySet, len(s))
	for key := range s {
		clone[key] = struct{}{}
	}
	return clone
}

// CountByCategory tallies records per category.
func CountByCategory(records []Record) map[Category]int {
	counts := make(map[Category]int)
	for _, record := range records {
		counts[record.Category]++
	}
	return counts
}
