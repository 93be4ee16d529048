// Package export writes annotated medal tables to JSON files.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/podium/internal/domain/medals"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Writer persists one season's annotated medal table.
type Writer interface {
	Write(ctx context.Context, table medals.AnnotatedTable, path string) error
}

// JSONWriter writes tables as pretty-printed JSON files. Object keys come
// out sorted, so writing the same table twice produces identical bytes.
type JSONWriter struct {
	log logger.Logger
}

// NewJSONWriter constructs a writer with configuration options.
func NewJSONWriter(opts ...Option) *JSONWriter {
	w := &JSONWriter{
		log: logger.Get().Named("export"),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write implements Writer. Year keys are rendered as decimal strings and
// missing parent directories are created. An empty table still produces a
// file holding an empty object.
func (w *JSONWriter) Write(ctx context.Context, table medals.AnnotatedTable, path string) error {
	w.log.Info(ctx, "saving processed data", logger.String("path", path))

	out := make(map[string]map[string]medals.Entry, len(table))
	for year, countries := range table {
		out[strconv.Itoa(year)] = countries
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(out); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	metrics.RecordExportWritten()
	w.log.Info(ctx, "export complete",
		logger.String("path", path),
		logger.Int("years", len(out)),
	)

	return nil
}
