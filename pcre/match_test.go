package pcre

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestMatch builds a Match directly so accessor behavior is testable
// without invoking the engine.
func newTestMatch(subject string, ovector []int32, stringCount int) *Match {
	return &Match{subject: subject, ovector: ovector, stringCount: stringCount}
}

func TestMatchAccessors(t *testing.T) {
	// "12-34" within "12-34 56-78": group 0 (0,5), group 1 (0,2), group 2 (3,5).
	m := newTestMatch("12-34 56-78", []int32{0, 5, 0, 2, 3, 5}, 3)

	require.Equal(t, 3, m.StringCount())

	require.Equal(t, "12-34", m.Group(0))
	require.Equal(t, "12", m.Group(1))
	require.Equal(t, "34", m.Group(2))

	require.Equal(t, 0, m.GroupStart(0))
	require.Equal(t, 5, m.GroupEnd(0))
	require.Equal(t, 5, m.GroupLen(0))

	require.Equal(t, 3, m.GroupStart(2))
	require.Equal(t, 5, m.GroupEnd(2))
	require.Equal(t, 2, m.GroupLen(2))
}

func TestMatchOutOfRangePanics(t *testing.T) {
	// Two groups populated out of three possible: trailing group unset.
	m := newTestMatch("ab", []int32{0, 2, 0, 1, -1, -1}, 2)

	require.Equal(t, "a", m.Group(1))

	// Beyond StringCount must fail loudly, never return garbage derived
	// from the -1 sentinels.
	require.Panics(t, func() { m.Group(2) })
	require.Panics(t, func() { m.GroupStart(2) })
	require.Panics(t, func() { m.GroupEnd(-1) })
	require.Panics(t, func() { m.GroupLen(5) })
}
