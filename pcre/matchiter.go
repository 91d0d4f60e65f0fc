package pcre

import "github.com/regolabs/pcrekit/bindings"

// MatchIterator is an independent cursor over successive matches of one
// pattern within one subject. It shares the pattern's native handle via
// the engine's reference count, holds a private NUL-terminated native copy
// of the subject, and reuses a single offset vector across calls, so
// repeated matching avoids the per-call allocations of Exec.
//
// The iterator is lazy and finite. It cannot be reset; Clone an iterator
// in its starting state to restart later.
type MatchIterator struct {
	code         bindings.Code
	extra        bindings.Extra // read-only snapshot, never mutated here
	captureCount int
	subject      string
	buf          bindings.Subject
	offset       int32
	options      ExecOption
	ovector      []int32 // reused every call; capacity fixed at creation
	done         bool
}

// Next returns the next match, or ok == false when no further match
// exists. Once exhausted, every subsequent call reports ok == false.
//
// The returned Match borrows the iterator's subject string, not its
// scratch buffer, so it remains valid while the iterator advances.
func (it *MatchIterator) Next() (m *Match, ok bool) {
	if it.done || it.code == nil {
		return nil, false
	}
	if int(it.offset) > len(it.subject) {
		it.done = true
		return nil, false
	}

	rc := bindings.Exec(it.code, it.extra, it.buf, int(it.offset), int(it.options), it.ovector)
	if rc < 0 {
		it.done = true
		return nil, false
	}

	// Advance past the match. An empty match must still move the scan
	// position forward, or iteration would never terminate.
	if it.ovector[1] == it.ovector[0] {
		it.offset = it.ovector[1] + 1
	} else {
		it.offset = it.ovector[1]
	}

	return &Match{
		subject:     it.subject,
		ovector:     append([]int32(nil), it.ovector[:(it.captureCount+1)*2]...),
		stringCount: rc,
	}, true
}

// Clone returns an independent cursor positioned at the same offset. The
// clone takes its own reference on the native handle and derives its own
// native subject copy, since either iterator may advance or close
// independently of the other.
func (it *MatchIterator) Clone() *MatchIterator {
	bindings.Refcount(it.code, 1)
	return &MatchIterator{
		code:         it.code,
		extra:        it.extra,
		captureCount: it.captureCount,
		subject:      it.subject,
		buf:          bindings.NewSubject(it.subject),
		offset:       it.offset,
		options:      it.options,
		ovector:      make([]int32, len(it.ovector)),
		done:         it.done,
	}
}

// Close releases the iterator's subject buffer and its reference to the
// native handle. When the shared reference count reaches zero, the extra
// block and then the compiled pattern are freed, exactly once. Close is
// idempotent.
func (it *MatchIterator) Close() error {
	if it.code == nil {
		return nil
	}
	if bindings.Refcount(it.code, -1) == 0 {
		if it.extra != nil {
			bindings.FreeStudy(it.extra)
		}
		bindings.Free(it.code)
	}
	it.code = nil
	it.extra = nil
	it.buf.Free()
	it.done = true
	return nil
}
