package codekit

import "errors"

var (
	// ErrNonFeasibleConfig is returned by Generate when the charset and
	// pattern cannot produce the requested number of unique codes, i.e.
	// charset.Len() ^ pattern.Wildcards() < count. The check runs before any
	// sampling, so the error is deterministic for a given config.
	ErrNonFeasibleConfig = errors.New("charset and pattern cannot produce the requested number of unique codes")

	// ErrEmptyCharset is returned when a code would require sampling from an
	// empty character pool.
	ErrEmptyCharset = errors.New("cannot sample from an empty charset")
)
