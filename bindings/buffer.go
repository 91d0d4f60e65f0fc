package bindings

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import "unsafe"

// Subject is a native, NUL-terminated copy of a subject string. The engine
// requires a NUL-terminated buffer, while the logical subject may contain
// interior NUL bytes; the explicit length disambiguates, so interior NULs
// are preserved rather than truncating the subject.
type Subject struct {
	ptr    unsafe.Pointer
	length int
}

// NewSubject copies s into native memory with a trailing NUL byte. The
// returned buffer must be released with Free.
func NewSubject(s string) Subject {
	n := len(s)
	buf := C.calloc(C.size_t(n+1), 1)
	if n > 0 {
		C.memcpy(buf, unsafe.Pointer(unsafe.StringData(s)), C.size_t(n))
	}
	return Subject{ptr: buf, length: n}
}

// Len returns the subject length in bytes, excluding the trailing NUL.
func (s *Subject) Len() int { return s.length }

// Free releases the native buffer. Safe to call more than once.
func (s *Subject) Free() {
	if s.ptr != nil {
		C.free(s.ptr)
		s.ptr = nil
		s.length = 0
	}
}

// MarkSlot is a native cell the engine writes the most recent mark name
// pointer into. It lives in C memory because the extra block retains its
// address across exec calls, which rules out Go-managed memory.
type MarkSlot struct {
	ptr unsafe.Pointer // *C.uchar cell, zero-initialized
}

// NewMarkSlot allocates a zeroed mark cell in native memory.
func NewMarkSlot() MarkSlot {
	return MarkSlot{ptr: C.calloc(1, C.size_t(unsafe.Sizeof(uintptr(0))))}
}

// Valid reports whether the slot has been allocated.
func (m *MarkSlot) Valid() bool { return m.ptr != nil }

// Get reads the mark name last recorded by the engine. ok is false when the
// slot is unallocated or no mark has been set.
func (m *MarkSlot) Get() (name string, ok bool) {
	if m.ptr == nil {
		return "", false
	}
	p := *(**C.uchar)(m.ptr)
	if p == nil {
		return "", false
	}
	return C.GoString((*C.char)(unsafe.Pointer(p))), true
}

// Free releases the native cell. Safe to call more than once. The caller
// must first detach the slot from any extra block still referencing it.
func (m *MarkSlot) Free() {
	if m.ptr != nil {
		C.free(m.ptr)
		m.ptr = nil
	}
}
