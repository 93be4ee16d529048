package dataset

import "github.com/okian/podium/pkg/logger"

// Option applies a configuration option to the CSVLoader.
type Option func(*CSVLoader)

// WithLogger overrides the loader's logger.
func WithLogger(log logger.Logger) Option {
	return func(l *CSVLoader) {
		if log != nil {
			l.log = log
		}
	}
}
