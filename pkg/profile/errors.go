package profile

import "errors"

// Package-specific errors
var (
	// ErrParsingProfiles is returned when a profiles document cannot be
	// decoded or defines no profiles at all.
	ErrParsingProfiles = errors.New("failed to parse profiles document")

	// ErrProfileNotFound is returned by Resolve for an unknown profile name.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnknownCharset is returned for a charset name outside the known set
	// (numeric, alphabetic, alphanumeric, custom).
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrInvalidProfile is returned when a profile's fields contradict each
	// other or are out of range.
	ErrInvalidProfile = errors.New("invalid profile")
)
