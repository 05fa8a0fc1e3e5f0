package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"
)

// newsFileRepository stores collection runs as a JSON document at a
// well-known path.
type newsFileRepository struct {
	path   string
	logger *logger.Logger
}

// NewNewsFileRepository creates a file-backed NewsStoreRepository.
func NewNewsFileRepository(path string, log *logger.Logger) NewsStoreRepository {
	return &newsFileRepository{path: path, logger: log}
}

// Load reads the prior run. Missing or corrupt files are treated as an empty
// run so a fresh deployment or a damaged file never blocks collection.
func (r *newsFileRepository) Load(_ context.Context) *entity.CollectionRun {
	empty := &entity.CollectionRun{Entities: map[string]*entity.EntityResult{}}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("Failed to read prior collection run", logger.ErrorField(err), logger.StringField("path", r.path))
		}
		return empty
	}

	var run entity.CollectionRun
	if err := json.Unmarshal(data, &run); err != nil {
		r.logger.Warn("Prior collection run is corrupt, starting empty", logger.ErrorField(err), logger.StringField("path", r.path))
		return empty
	}
	if run.Entities == nil {
		run.Entities = map[string]*entity.EntityResult{}
	}
	return &run
}

// Save writes the run with a temp-file-then-rename sequence so a crash never
// leaves a partially written document behind.
func (r *newsFileRepository) Save(_ context.Context, run *entity.CollectionRun) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection run: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection run: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection run file: %w", err)
	}

	return nil
}
