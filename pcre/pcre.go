package pcre

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/regolabs/pcrekit/bindings"
)

// Pcre is a compiled regular expression: a handle to the engine's
// reference-counted pattern object plus its optional extra block. It is
// created by Compile, optionally improved by Study, and must be released
// with Close.
//
// The native object is shared, via the engine's reference count, with every
// MatchIterator created from this pattern; the last owner to close frees it.
type Pcre struct {
	code         bindings.Code
	extra        *Extra
	captureCount int
	mark         bindings.MarkSlot
}

// Compile compiles the given regular expression with no options.
func Compile(pattern string) (*Pcre, error) {
	return CompileWithOptions(pattern, 0)
}

// CompileWithOptions compiles a regular expression using the given
// compile-time option set.
//
// A failed compilation is reported as a *CompilationError carrying the
// engine's diagnostic and the byte offset into the pattern. A pattern
// containing an interior NUL byte is rejected with ErrEmbeddedNUL before
// reaching the engine, since the engine takes the pattern as a
// NUL-terminated buffer.
func CompileWithOptions(pattern string, options CompileOption) (*Pcre, error) {
	if strings.IndexByte(pattern, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}

	// Default character tables.
	code, err := bindings.Compile(pattern, int(options), nil)
	if err != nil {
		var ce *bindings.CompileError
		if errors.As(err, &ce) {
			return nil, &CompilationError{Message: ce.Message, Offset: ce.Offset}
		}
		return nil, fmt.Errorf("pcre: compile: %w", err)
	}

	// Take the first reference.
	bindings.Refcount(code, 1)

	captureCount, err := bindings.CaptureCount(code)
	if err != nil {
		bindings.Refcount(code, -1)
		bindings.Free(code)
		return nil, fmt.Errorf("pcre: compile: %w", err)
	}

	return &Pcre{
		code:         code,
		captureCount: captureCount,
	}, nil
}

// MustCompile is like Compile but panics on error. It simplifies the safe
// initialization of package-level patterns known to be valid.
func MustCompile(pattern string) *Pcre {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("pcre: Compile(%q): %v", pattern, err))
	}
	return p
}

// CaptureCount returns the number of capture groups in the pattern,
// including one for each named group. The count is fixed at compile time:
// it excludes group 0 (the whole match) and never changes, not even across
// studying.
func (p *Pcre) CaptureCount() int {
	return p.captureCount
}

// Extra returns the pattern's extra block, or nil if the pattern has not
// been studied (or studying produced nothing).
func (p *Pcre) Extra() *Extra {
	return p.extra
}

// nativeExtra returns the raw extra handle for engine calls; nil when the
// pattern has no extra block.
func (p *Pcre) nativeExtra() bindings.Extra {
	if p.extra == nil {
		return nil
	}
	return p.extra.raw
}

// Exec matches the pattern against subject and returns the first match, or
// nil when the subject does not match. No-match is an ordinary outcome, not
// an error.
//
// This path is for ad-hoc single lookups: it allocates a fresh offset
// vector and a fresh native subject buffer per call. Use Matches for
// repeated matching over one subject.
func (p *Pcre) Exec(subject string) *Match {
	return p.ExecFrom(subject, 0)
}

// ExecFrom is Exec starting at byte offset startOffset within subject.
func (p *Pcre) ExecFrom(subject string, startOffset int) *Match {
	return p.ExecFromWithOptions(subject, startOffset, 0)
}

// ExecFromWithOptions is ExecFrom with a match-time option set.
func (p *Pcre) ExecFromWithOptions(subject string, startOffset int, options ExecOption) *Match {
	ovector := make([]int32, (p.captureCount+1)*3)

	buf := bindings.NewSubject(subject)
	defer buf.Free()

	rc := bindings.Exec(p.code, p.nativeExtra(), buf, startOffset, int(options), ovector)
	if rc < 0 {
		return nil
	}
	return &Match{
		subject:     subject,
		ovector:     append([]int32(nil), ovector[:(p.captureCount+1)*2]...),
		stringCount: rc,
	}
}

// Matches returns an iterator over successive matches of the pattern
// within subject. The iterator shares the pattern's native handle via the
// reference count and must be released with its Close.
func (p *Pcre) Matches(subject string) *MatchIterator {
	return p.MatchesWithOptions(subject, 0)
}

// MatchesWithOptions is Matches with a match-time option set, applied to
// every attempt the iterator makes.
func (p *Pcre) MatchesWithOptions(subject string, options ExecOption) *MatchIterator {
	bindings.Refcount(p.code, 1)
	return &MatchIterator{
		code:         p.code,
		extra:        p.nativeExtra(),
		captureCount: p.captureCount,
		subject:      subject,
		buf:          bindings.NewSubject(subject),
		options:      options,
		ovector:      make([]int32, (p.captureCount+1)*3),
	}
}

// Study asks the engine to analyze the pattern for information that may
// speed up matching. It reports whether an extra block now holds study
// data.
func (p *Pcre) Study() bool {
	return p.StudyWithOptions(0)
}

// StudyWithOptions is Study with a study-time option set.
//
// Studying replaces the pattern's extra block, which any live iterator
// derived from this pattern may still be reading. It is therefore refused
// (returns false, changing nothing) unless this pattern holds the only
// reference to the native handle.
func (p *Pcre) StudyWithOptions(options StudyOption) bool {
	if p.code == nil {
		return false
	}
	if bindings.Refcount(p.code, 0) != 1 {
		return false
	}

	// Release any previous study data before replacing it.
	if p.extra != nil {
		bindings.FreeStudy(p.extra.raw)
		p.extra = nil
	}

	raw, err := bindings.Study(p.code, int(options))
	if err != nil || raw == nil {
		return false
	}
	p.extra = &Extra{raw: raw}
	return true
}

// EnableMark makes subsequent matches record which (*MARK) name, if any,
// was hit. It requires an existing extra block and reports false otherwise:
// study the pattern first, with StudyExtraNeeded if necessary.
func (p *Pcre) EnableMark() bool {
	if p.extra == nil {
		return false
	}
	if !p.mark.Valid() {
		p.mark = bindings.NewMarkSlot()
	}
	p.extra.setMark(p.mark)
	return true
}

// Mark returns the mark name recorded by the most recent match. ok is
// false when no mark was hit or EnableMark was never called successfully.
func (p *Pcre) Mark() (name string, ok bool) {
	return p.mark.Get()
}

// NameCount returns the number of named capture groups in the pattern.
func (p *Pcre) NameCount() int {
	n, err := bindings.NameCount(p.code, p.nativeExtra())
	if err != nil {
		return 0
	}
	return n
}

// NameTable returns a table mapping each capture group name to its group
// numbers, in the order the engine's name table lists them. A name maps to
// more than one number when the pattern was compiled with DupNames.
func (p *Pcre) NameTable() map[string][]int {
	table := make(map[string][]int)

	raw, entrySize, err := bindings.NameTable(p.code, p.nativeExtra())
	if err != nil || entrySize < 3 {
		return table
	}

	// Each entry: big-endian 16-bit group number, then a NUL-terminated name.
	for off := 0; off+entrySize <= len(raw); off += entrySize {
		entry := raw[off : off+entrySize]
		n := int(entry[0])<<8 | int(entry[1])
		name := entry[2:]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		table[string(name)] = append(table[string(name)], n)
	}
	return table
}

// Close releases this pattern's reference to the native handle. When the
// shared reference count reaches zero, the extra block and then the
// compiled pattern are freed, exactly once. Close is idempotent: internal
// pointers are cleared so a second call is a safe no-op.
func (p *Pcre) Close() error {
	if p.code == nil {
		return nil
	}
	if bindings.Refcount(p.code, -1) == 0 {
		if p.extra != nil {
			bindings.FreeStudy(p.extra.raw)
		}
		bindings.Free(p.code)
	} else if p.extra != nil && p.mark.Valid() {
		// The extra block outlives this pattern (an iterator still shares
		// it); detach the mark slot before freeing it.
		p.extra.UnsetMark()
	}
	p.extra = nil
	p.code = nil
	p.mark.Free()
	return nil
}
