// File: pkg/config/config.go
package config

import (
	"path/filepath"
)

// AppName is used for the user configuration directory.
const AppName = "headerdump"

// Options holds the tunables of a headerdump run. The zero configuration
// produced by Default reproduces the fixed report layout.
type Options struct {
	IncludeDir string `yaml:"include_dir"` // Directory under the project root holding the headers.
	Suffix     string `yaml:"suffix"`      // Filename suffix a header must end with.
	Output     string `yaml:"output"`      // Report file name, created in the project root.
	Banner     string `yaml:"banner"`      // First line of the report.
	FenceLang  string `yaml:"fence_lang"`  // Language tag on the opening code fence.
	Verbose    bool   `yaml:"verbose"`     // Enables debug logging.
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		IncludeDir: "include",
		Suffix:     ".h",
		Output:     "headers.txt",
		Banner:     "=== HEADER FILES ===",
		FenceLang:  "cpp",
	}
}

// Validate reports the first problem that would make a run meaningless.
func (o Options) Validate() error {
	if o.IncludeDir == "" {
		return ErrEmptyIncludeDir
	}
	if o.Suffix == "" {
		return ErrEmptySuffix
	}
	if o.Output == "" {
		return ErrEmptyOutput
	}
	if filepath.Base(o.Output) != o.Output {
		return ErrOutputNotBaseName
	}
	return nil
}
