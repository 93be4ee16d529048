package dataset

import "errors"

// Sentinel kinds for dataset loading errors.
var (
	ErrSourceNotFound   = errors.New("dataset not found")
	ErrMissingColumn    = errors.New("missing dataset column")
	ErrMalformedDataset = errors.New("malformed dataset")
)
