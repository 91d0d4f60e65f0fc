package pcre

import (
	"errors"
	"fmt"
)

// ErrEmbeddedNUL reports a pattern containing an interior NUL byte. The
// engine takes patterns as NUL-terminated buffers, so such a pattern cannot
// be passed through without silent truncation; it is rejected instead.
var ErrEmbeddedNUL = errors.New("pcre: pattern contains an embedded NUL byte")

// CompilationError reports a pattern the engine refused to compile. It is
// an ordinary, recoverable result: callers branch on it, they do not treat
// it as fatal.
type CompilationError struct {
	// Message is the engine's diagnostic text, empty when the engine
	// supplied none.
	Message string

	// Offset is the byte position in the pattern where compilation failed.
	Offset int
}

func (e *CompilationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pcre: compilation failed at offset %d", e.Offset)
	}
	return fmt.Sprintf("pcre: compilation failed at offset %d: %s", e.Offset, e.Message)
}
