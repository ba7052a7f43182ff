package classifier

import "errors"

// Fatal error categories. Per-record problems are not errors in this
// sense: they are collected as diagnostics and the scan continues.
var (
	// ErrFormatSpec marks a malformed generic --format specifier.
	ErrFormatSpec = errors.New("malformed format specifier")

	// ErrUnknownScoring marks an unsupported scoring policy name, or a
	// policy that cannot be computed for the scanned layout.
	ErrUnknownScoring = errors.New("unsupported scoring")

	// ErrHeaderMismatch marks a header row whose column count does not
	// match the expected layout. The whole file is rejected.
	ErrHeaderMismatch = errors.New("unsupported output format")

	// ErrNoReads means the scan reached end of stream without reading a
	// single sequence.
	ErrNoReads = errors.New("cannot read any sequence")

	// ErrNoneRetained means every classified sequence was rejected by the
	// minimum-score filter.
	ErrNoneRetained = errors.New("no sequence passed the filter")
)
