// File: pkg/headers/types.go
package headers

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is recorded for a header whose bytes are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 content")

// Section is one header file's slot in the report.
type Section struct {
	Path    string // Path as produced by CollectHeaders.
	Content string // Raw file content; empty when Err is set.
	Err     error  // Read failure, rendered inline instead of Content.
}

// Body returns the text placed between the fences.
func (s Section) Body() string {
	if s.Err != nil {
		return fmt.Sprintf("Error reading %s: %v", s.Path, s.Err)
	}
	return s.Content
}
