package config

import "errors"

// Configuration errors, checked with errors.Is.
var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	ErrEmptyIncludeDir = errors.New("invalid include dir: must not be empty")

	// ErrEmptySuffix is returned for an empty suffix, which would match every file.
	ErrEmptySuffix = errors.New("invalid suffix: must not be empty")

	ErrEmptyOutput = errors.New("invalid output: must not be empty")

	// ErrOutputNotBaseName is returned when the output name contains a directory part.
	// The report is always written into the project root.
	ErrOutputNotBaseName = errors.New("invalid output: must be a file name, not a path")
)
