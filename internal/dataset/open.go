package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promodesk/promodesk/internal/config"
)

// SourceFor returns the Source selected by cfg. A DATASET_DIR overrides
// the embedded fixtures.
func SourceFor(cfg *config.Config) Source {
	switch {
	case cfg.DatasetSource == config.SourceHTTP:
		return NewHTTPSource(cfg.DatasetURL, cfg.HTTPTimeout)
	case cfg.DatasetDir != "":
		return NewDirSource(cfg.DatasetDir)
	default:
		return Embedded()
	}
}

// Open loads the configured dataset and logs every validation issue.
// Issues are warnings; only load failures are returned.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dataset, error) {
	ds, err := SourceFor(cfg).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", cfg.DatasetSource, err)
	}

	for _, issue := range Validate(ds) {
		logger.Warn("dataset issue",
			slog.String("kind", issue.Kind),
			slog.String("record_id", issue.RecordID),
			slog.String("problem", issue.Problem),
		)
	}

	counts := ds.Counts()
	attrs := make([]any, 0, len(Kinds))
	for _, kind := range Kinds {
		attrs = append(attrs, slog.Int(kind, counts[kind]))
	}
	logger.Info("dataset loaded", attrs...)
	return ds, nil
}
