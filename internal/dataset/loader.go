package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/artatlas/curator/internal/artwork"
)

// Loader reads artwork datasets from JSON documents or parquet snapshots.
type Loader struct {
	datasetPath string
}

// NewLoader creates a new dataset loader.
func NewLoader(datasetPath string) *Loader {
	return &Loader{
		datasetPath: datasetPath,
	}
}

// Load returns all records from the dataset file.
func (l *Loader) Load() ([]artwork.Record, error) {
	doc, err := l.LoadDocument()
	if err != nil {
		return nil, err
	}
	return doc.Artworks, nil
}

// LoadDocument returns the full dataset document. Parquet snapshots carry no
// metadata section, so Metadata is nil for them.
func (l *Loader) LoadDocument() (*Document, error) {
	ext := strings.ToLower(filepath.Ext(l.datasetPath))

	switch ext {
	case ".json":
		return l.loadJSON()
	case ".parquet":
		records, err := l.loadParquet()
		if err != nil {
			return nil, err
		}
		return &Document{Artworks: records}, nil
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .json, .parquet)", ext)
	}
}

// LoadSample returns at most limit records (useful for inspection).
func (l *Loader) LoadSample(limit int) ([]artwork.Record, error) {
	records, err := l.Load()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (l *Loader) loadJSON() (*Document, error) {
	slog.Debug("Opening JSON dataset", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	slog.Debug("JSON dataset stats", "size_bytes", info.Size())

	var doc Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}

	slog.Debug("Finished reading JSON dataset", "total_records", len(doc.Artworks))

	return &doc, nil
}

func (l *Loader) loadParquet() ([]artwork.Record, error) {
	slog.Debug("Opening parquet dataset", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	var records []artwork.Record
	rows := make([]parquetRow, 128)

	for {
		n, err := reader.Read(rows)
		for i := 0; i < n; i++ {
			records = append(records, rows[i].record())
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading parquet dataset", "total_records", len(records))

	return records, nil
}
