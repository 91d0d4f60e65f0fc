package pcre

import "fmt"

// Match is one match of a subject string against a compiled pattern. It
// borrows the subject and owns a copy of the valid prefix of the engine's
// offset vector, so it stays usable after the pattern or iterator that
// produced it moves on. Group 0 is the whole match.
//
// A Match is immutable once constructed.
type Match struct {
	subject     string
	ovector     []int32 // start/end pairs, 2*(captureCount+1) entries
	stringCount int
}

// StringCount returns the number of groups the engine actually populated
// for this match, including group 0. It may be less than the pattern's
// capture count plus one when trailing groups did not participate.
func (m *Match) StringCount() int {
	return m.stringCount
}

// GroupStart returns the start byte offset of capture group n within the
// subject.
func (m *Match) GroupStart(n int) int {
	m.checkGroup(n)
	return int(m.ovector[2*n])
}

// GroupEnd returns the end byte offset of capture group n within the
// subject.
func (m *Match) GroupEnd(n int) int {
	m.checkGroup(n)
	return int(m.ovector[2*n+1])
}

// GroupLen returns the length in bytes of capture group n.
func (m *Match) GroupLen(n int) int {
	m.checkGroup(n)
	return int(m.ovector[2*n+1] - m.ovector[2*n])
}

// Group returns the substring captured by group n as a slice of the
// subject. No copy is made; the result is valid as long as the subject is.
func (m *Match) Group(n int) string {
	m.checkGroup(n)
	return m.subject[m.ovector[2*n]:m.ovector[2*n+1]]
}

// checkGroup rejects indexes outside the populated range. Unset groups
// carry negative sentinel offsets from the engine, so returning data for
// them would be garbage; misuse panics instead.
func (m *Match) checkGroup(n int) {
	if n < 0 || n >= m.stringCount {
		panic(fmt.Sprintf("pcre: group index %d out of range [0, %d)", n, m.stringCount))
	}
}
