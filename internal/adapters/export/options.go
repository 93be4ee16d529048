package export

import "github.com/okian/podium/pkg/logger"

// Option applies a configuration option to the JSONWriter.
type Option func(*JSONWriter)

// WithLogger overrides the writer's logger.
func WithLogger(log logger.Logger) Option {
	return func(w *JSONWriter) {
		if log != nil {
			w.log = log
		}
	}
}
