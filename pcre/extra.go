package pcre

import "github.com/regolabs/pcrekit/bindings"

// Extra wraps the engine's extra block: optional study data plus a handful
// of flag-gated fields that tune matching. Exactly one Pcre owns an Extra
// at a time; iterators derived from the pattern share it read-only and
// never mutate it. It is released together with the pattern's native
// handle when the shared reference count reaches zero.
type Extra struct {
	raw bindings.Extra
}

// Flags returns the extra-block feature flags currently set.
func (e *Extra) Flags() ExtraOption {
	return ExtraOption(bindings.ExtraFlags(e.raw))
}

// MatchLimit returns the match limit, if one has been set with
// SetMatchLimit. The engine's built-in default (typically 10 million)
// applies when ok is false.
func (e *Extra) MatchLimit() (limit uint32, ok bool) {
	return bindings.ExtraMatchLimit(e.raw)
}

// SetMatchLimit bounds the number of internal matching steps, overriding
// the engine's default.
func (e *Extra) SetMatchLimit(limit uint32) {
	bindings.ExtraSetMatchLimit(e.raw, limit)
}

// MatchLimitRecursion returns the recursion depth limit, if one has been
// set with SetMatchLimitRecursion.
func (e *Extra) MatchLimitRecursion() (limit uint32, ok bool) {
	return bindings.ExtraMatchLimitRecursion(e.raw)
}

// SetMatchLimitRecursion bounds the matching recursion depth, overriding
// the engine's default.
func (e *Extra) SetMatchLimitRecursion(limit uint32) {
	bindings.ExtraSetMatchLimitRecursion(e.raw, limit)
}

// UnsetMark stops the engine from recording mark names for this pattern.
func (e *Extra) UnsetMark() {
	bindings.ExtraUnsetMark(e.raw)
}

// setMark wires the pattern's native mark slot into the block.
func (e *Extra) setMark(slot bindings.MarkSlot) {
	bindings.ExtraSetMark(e.raw, slot)
}
