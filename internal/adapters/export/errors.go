package export

import "errors"

// ErrExportFailed wraps filesystem and serialization failures.
var ErrExportFailed = errors.New("export failed")
