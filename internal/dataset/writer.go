package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/artatlas/curator/internal/artwork"
)

// Write serializes doc to path as indented JSON, creating the output
// directory if needed. The file is written exactly once per run.
func Write(path string, doc *Document) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	return nil
}

// parquetRow is the flattened column layout used for parquet snapshots.
// Years are stored in their text rendering so numeric and free-form dates
// share one column.
type parquetRow struct {
	ID                     int64  `parquet:"id"`
	Title                  string `parquet:"title"`
	Artist                 string `parquet:"artist"`
	Year                   string `parquet:"year"`
	Category               string `parquet:"category"`
	Medium                 string `parquet:"medium"`
	Location               string `parquet:"location"`
	Region                 string `parquet:"region"`
	Period                 string `parquet:"period"`
	Movement               string `parquet:"movement"`
	HistoricalSignificance int32  `parquet:"historical_significance"`
	CulturalImpact         int32  `parquet:"cultural_impact"`
	TechnicalInnovation    int32  `parquet:"technical_innovation"`
	PedagogicalValue       int32  `parquet:"pedagogical_value"`
	DiversityContribution  int32  `parquet:"diversity_contribution"`
	SelectionRationale     string `parquet:"selection_rationale"`
	ImageURL               string `parquet:"image_url"`
}

func toParquetRow(r artwork.Record) parquetRow {
	return parquetRow{
		ID:                     int64(r.ID),
		Title:                  r.Title,
		Artist:                 r.Artist,
		Year:                   r.Year.String(),
		Category:               string(r.Category),
		Medium:                 r.Medium,
		Location:               r.Location,
		Region:                 r.Region,
		Period:                 r.Period,
		Movement:               r.Movement,
		HistoricalSignificance: int32(r.Scores.HistoricalSignificance),
		CulturalImpact:         int32(r.Scores.CulturalImpact),
		TechnicalInnovation:    int32(r.Scores.TechnicalInnovation),
		PedagogicalValue:       int32(r.Scores.PedagogicalValue),
		DiversityContribution:  int32(r.Scores.DiversityContribution),
		SelectionRationale:     r.SelectionRationale,
		ImageURL:               r.ImageURL,
	}
}

func (row parquetRow) record() artwork.Record {
	return artwork.Record{
		ID:       int(row.ID),
		Title:    row.Title,
		Artist:   row.Artist,
		Year:     artwork.ParseYear(row.Year),
		Category: artwork.Category(row.Category),
		Medium:   row.Medium,
		Location: row.Location,
		Region:   row.Region,
		Period:   row.Period,
		Movement: row.Movement,
		Scores: artwork.Scores{
			HistoricalSignificance: int(row.HistoricalSignificance),
			CulturalImpact:         int(row.CulturalImpact),
			TechnicalInnovation:    int(row.TechnicalInnovation),
			PedagogicalValue:       int(row.PedagogicalValue),
			DiversityContribution:  int(row.DiversityContribution),
		},
		SelectionRationale: row.SelectionRationale,
		ImageURL:           row.ImageURL,
	}
}

// WriteParquet writes records to path as a parquet snapshot.
func WriteParquet(path string, records []artwork.Record) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[parquetRow](file)

	rows := make([]parquetRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, toParquetRow(record))
	}

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return nil
}
