package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang-apt-news-collector/internal/entity"
)

// ErrNoDocument is returned when the collector has not produced a document
// yet.
var ErrNoDocument = fmt.Errorf("news document not found")

type newsDocumentRepository struct {
	apartmentPath string
	regionPath    string
}

// NewNewsDocumentRepository creates a NewsDocumentRepository reading the
// collector's output files.
func NewNewsDocumentRepository(apartmentPath, regionPath string) NewsDocumentRepository {
	return &newsDocumentRepository{
		apartmentPath: apartmentPath,
		regionPath:    regionPath,
	}
}

func (r *newsDocumentRepository) ApartmentNews(ctx context.Context) (*entity.CollectionRun, error) {
	return readDocument(r.apartmentPath)
}

func (r *newsDocumentRepository) RegionNews(ctx context.Context) (*entity.CollectionRun, error) {
	return readDocument(r.regionPath)
}

func readDocument(path string) (*entity.CollectionRun, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to read news document %s: %w", path, err)
	}

	var run entity.CollectionRun
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("failed to parse news document %s: %w", path, err)
	}
	return &run, nil
}
