// Package bindings provides thin Go shims over libpcre's C entry points.
//
// Each function wraps exactly one C call with a Go-native signature. All
// unsafe pointer handling is confined to this package; the safe API lives in
// the pcre package, which layers ownership and bounds checking on top of
// these primitives.
package bindings

/*
#cgo LDFLAGS: -lpcre
#include <pcre.h>
#include <stdlib.h>

// pcre_free is a function pointer variable, which cgo cannot call directly.
static void pcrekit_free_code(pcre *code) {
	pcre_free(code);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Code is an opaque handle to a compiled pattern (the engine's pcre object).
type Code unsafe.Pointer

// Extra is an opaque handle to a pcre_extra block produced by Study. A nil
// Extra is valid everywhere one is accepted.
type Extra unsafe.Pointer

// CompileError reports a failed compilation: the engine's diagnostic text
// (may be empty) and the byte offset into the pattern where it gave up.
type CompileError struct {
	Message string
	Offset  int
}

func (e *CompileError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bindings: pcre_compile failed at offset %d", e.Offset)
	}
	return fmt.Sprintf("bindings: pcre_compile failed at offset %d: %s", e.Offset, e.Message)
}

// Compile compiles pattern with the given option bits via pcre_compile.
// tables may be nil to use the engine's default character tables. The
// returned Code has a reference count of zero; the caller is expected to
// take the first reference via Refcount.
//
// The pattern must not contain interior NUL bytes; the caller checks this
// before converting to a C string.
func Compile(pattern string, options int, tables unsafe.Pointer) (Code, error) {
	cpat := C.CString(pattern)
	defer C.free(unsafe.Pointer(cpat))

	var errptr *C.char
	var erroffset C.int
	code := C.pcre_compile(cpat, C.int(options), &errptr, &erroffset, (*C.uchar)(tables))
	if code == nil {
		msg := ""
		if errptr != nil {
			msg = C.GoString(errptr)
		}
		return nil, &CompileError{Message: msg, Offset: int(erroffset)}
	}
	return Code(unsafe.Pointer(code)), nil
}

// Study runs pcre_study on a compiled pattern. It returns a nil Extra when
// the engine found nothing worth recording (unless the study options force
// an extra block), and an error when the engine reports one.
func Study(code Code, options int) (Extra, error) {
	var errptr *C.char
	extra := C.pcre_study((*C.pcre)(unsafe.Pointer(code)), C.int(options), &errptr)
	if errptr != nil {
		return nil, fmt.Errorf("bindings: pcre_study failed: %s", C.GoString(errptr))
	}
	return Extra(unsafe.Pointer(extra)), nil
}

// Exec runs one match attempt via pcre_exec. The subject must be a native
// buffer (see NewSubject); ovector receives start/end pairs and must be
// sized 3*(captureCount+1). The return code is the engine's: the number of
// populated capture pairs when >= 0, PCRE_ERROR_NOMATCH or another negative
// error code otherwise.
func Exec(code Code, extra Extra, subject Subject, startOffset, options int, ovector []int32) int {
	var ovecptr *C.int
	if len(ovector) > 0 {
		ovecptr = (*C.int)(unsafe.Pointer(&ovector[0]))
	}
	rc := C.pcre_exec(
		(*C.pcre)(unsafe.Pointer(code)),
		(*C.pcre_extra)(unsafe.Pointer(extra)),
		(*C.char)(subject.ptr),
		C.int(subject.length),
		C.int(startOffset),
		C.int(options),
		ovecptr,
		C.int(len(ovector)),
	)
	return int(rc)
}

// Refcount adjusts the pattern's reference count by delta and returns the
// new count. A delta of zero reads the count without mutating it. The
// engine serializes nothing here; callers must not race on the same Code.
func Refcount(code Code, delta int) int {
	return int(C.pcre_refcount((*C.pcre)(unsafe.Pointer(code)), C.int(delta)))
}

// Free releases a compiled pattern. The caller must ensure the reference
// count has reached zero and that no Extra derived from this Code outlives
// the call.
func Free(code Code) {
	C.pcrekit_free_code((*C.pcre)(unsafe.Pointer(code)))
}

// FreeStudy releases an extra block, including any JIT data it owns.
// Passing a nil Extra is a no-op, matching pcre_free_study.
func FreeStudy(extra Extra) {
	C.pcre_free_study((*C.pcre_extra)(unsafe.Pointer(extra)))
}

// CaptureCount returns the pattern's capture group count, excluding the
// implicit whole-match group, via pcre_fullinfo.
func CaptureCount(code Code) (int, error) {
	var n C.int
	rc := C.pcre_fullinfo((*C.pcre)(unsafe.Pointer(code)), nil, C.PCRE_INFO_CAPTURECOUNT, unsafe.Pointer(&n))
	if rc != 0 {
		return 0, fmt.Errorf("bindings: pcre_fullinfo(CAPTURECOUNT) failed: %d", rc)
	}
	return int(n), nil
}

// NameCount returns the number of entries in the pattern's name table.
func NameCount(code Code, extra Extra) (int, error) {
	var n C.int
	rc := C.pcre_fullinfo((*C.pcre)(unsafe.Pointer(code)), (*C.pcre_extra)(unsafe.Pointer(extra)), C.PCRE_INFO_NAMECOUNT, unsafe.Pointer(&n))
	if rc != 0 {
		return 0, fmt.Errorf("bindings: pcre_fullinfo(NAMECOUNT) failed: %d", rc)
	}
	return int(n), nil
}

// NameTable copies the pattern's raw name table out of engine memory and
// returns it together with the per-entry size. Each entry is entrySize
// bytes: a big-endian 16-bit group number followed by a NUL-terminated
// name. The caller parses entries; this function only sizes and copies.
func NameTable(code Code, extra Extra) (table []byte, entrySize int, err error) {
	count, err := NameCount(code, extra)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return nil, 0, nil
	}

	var size C.int
	rc := C.pcre_fullinfo((*C.pcre)(unsafe.Pointer(code)), (*C.pcre_extra)(unsafe.Pointer(extra)), C.PCRE_INFO_NAMEENTRYSIZE, unsafe.Pointer(&size))
	if rc != 0 {
		return nil, 0, fmt.Errorf("bindings: pcre_fullinfo(NAMEENTRYSIZE) failed: %d", rc)
	}

	var tabptr *C.uchar
	rc = C.pcre_fullinfo((*C.pcre)(unsafe.Pointer(code)), (*C.pcre_extra)(unsafe.Pointer(extra)), C.PCRE_INFO_NAMETABLE, unsafe.Pointer(&tabptr))
	if rc != 0 {
		return nil, 0, fmt.Errorf("bindings: pcre_fullinfo(NAMETABLE) failed: %d", rc)
	}
	if tabptr == nil || size <= 0 {
		return nil, 0, nil
	}

	raw := C.GoBytes(unsafe.Pointer(tabptr), C.int(count)*size)
	return raw, int(size), nil
}

// Version returns the engine's version string.
func Version() string {
	return C.GoString(C.pcre_version())
}

// ExtraFlags returns the extra block's flags word, which gates which of the
// optional fields are active.
func ExtraFlags(extra Extra) uint64 {
	return uint64((*C.pcre_extra)(unsafe.Pointer(extra)).flags)
}

// ExtraMatchLimit reads the match limit field; ok is false when the
// PCRE_EXTRA_MATCH_LIMIT flag is not set.
func ExtraMatchLimit(extra Extra) (limit uint32, ok bool) {
	e := (*C.pcre_extra)(unsafe.Pointer(extra))
	if e.flags&C.PCRE_EXTRA_MATCH_LIMIT == 0 {
		return 0, false
	}
	return uint32(e.match_limit), true
}

// ExtraSetMatchLimit sets the match limit field and its presence flag.
func ExtraSetMatchLimit(extra Extra, limit uint32) {
	e := (*C.pcre_extra)(unsafe.Pointer(extra))
	e.flags |= C.PCRE_EXTRA_MATCH_LIMIT
	e.match_limit = C.ulong(limit)
}

// ExtraMatchLimitRecursion reads the recursion depth limit field; ok is
// false when the PCRE_EXTRA_MATCH_LIMIT_RECURSION flag is not set.
func ExtraMatchLimitRecursion(extra Extra) (limit uint32, ok bool) {
	e := (*C.pcre_extra)(unsafe.Pointer(extra))
	if e.flags&C.PCRE_EXTRA_MATCH_LIMIT_RECURSION == 0 {
		return 0, false
	}
	return uint32(e.match_limit_recursion), true
}

// ExtraSetMatchLimitRecursion sets the recursion depth limit field and its
// presence flag.
func ExtraSetMatchLimitRecursion(extra Extra, limit uint32) {
	e := (*C.pcre_extra)(unsafe.Pointer(extra))
	e.flags |= C.PCRE_EXTRA_MATCH_LIMIT_RECURSION
	e.match_limit_recursion = C.ulong(limit)
}

// ExtraSetMark wires a native mark slot into the extra block so the engine
// records the most recent (*MARK) name there during matching. The slot must
// be native memory (see NewMarkSlot): cgo pointer rules forbid parking a Go
// pointer inside a C struct across calls.
func ExtraSetMark(extra Extra, slot MarkSlot) {
	e := (*C.pcre_extra)(unsafe.Pointer(extra))
	e.flags |= C.PCRE_EXTRA_MARK
	e.mark = (**C.uchar)(slot.ptr)
}

// ExtraUnsetMark clears the mark field and its presence flag.
func ExtraUnsetMark(extra Extra) {
	e := (*C.pcre_extra)(unsafe.Pointer(extra))
	e.flags &^= C.PCRE_EXTRA_MARK
	e.mark = nil
}
