// Package pcre provides a safe, idiomatic handle over libpcre's compiled
// regular expression objects.
//
// # Overview
//
// This package wraps the engine's compile, study and exec primitives with
// explicit ownership management. The compiled pattern is a reference-counted
// native resource shared between a Pcre and every MatchIterator derived from
// it; the last owner to call Close frees it. The engine's flat offset vector
// is translated into a bounds-checked capture-group API.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Pcre: a compiled pattern, created by Compile and released by Close
//   - Extra: the optional study block with flag-gated tuning fields
//   - Match: one match, borrowing the subject and owning its capture offsets
//   - MatchIterator: a cloneable cursor over successive matches
//   - CompileOption, ExecOption, StudyOption, ExtraOption: option bit sets
//
// # Compiling and Matching
//
//	p, err := pcre.Compile(`(\d+)-(\d+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	if m := p.Exec("12-34 56-78"); m != nil {
//	    fmt.Println(m.Group(0), m.Group(1), m.Group(2)) // 12-34 12 34
//	}
//
// Exec is the single-shot path; it allocates its offset vector per call.
// For repeated matching over one subject, use the iterator, which reuses
// its scratch state:
//
//	it := p.Matches("12-34 56-78")
//	defer it.Close()
//	for m, ok := it.Next(); ok; m, ok = it.Next() {
//	    fmt.Println(m.Group(0))
//	}
//
// # Studying
//
// Study asks the engine to precompute data that may speed up matching.
// Studying replaces the pattern's extra block, so it is refused while any
// iterator still shares the native handle:
//
//	p.StudyWithOptions(pcre.StudyExtraNeeded)
//	p.EnableMark()
//
// # Error Handling
//
// A failed compilation returns *CompilationError with the engine's message
// and the byte offset of the failure. No-match is not an error: Exec
// returns nil and MatchIterator.Next reports ok == false. A pattern with an
// interior NUL byte is rejected with ErrEmbeddedNUL, and out-of-range group
// indexes panic, both distinct from no-match.
//
// # Thread Safety
//
// Handles are not safe for concurrent use. In particular the native
// reference count is mutated without synchronization, matching the engine's
// own contract: serialize Compile, Study, Close and iterator lifecycles
// externally. There is no cancellation at this layer; Extra.SetMatchLimit
// and Extra.SetMatchLimitRecursion are the only bounds on matching cost.
package pcre
