package pcre

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileAndClose(t *testing.T) {
	p, err := Compile("abc")
	require.NoError(t, err)
	require.NotNil(t, p)

	require.NoError(t, p.Close())
	// Second close is a safe no-op.
	require.NoError(t, p.Close())
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	require.Panics(t, func() { MustCompile("(") })
}

func TestCaptureCount(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"abc", 0},
		{"(a)(b)", 2},
		{`(\d+)-(\d+)`, 2},
		{"(?P<year>\\d{4})-(?P<month>\\d{2})", 2},
	}
	for _, tt := range tests {
		p, err := Compile(tt.pattern)
		require.NoError(t, err, tt.pattern)
		require.Equal(t, tt.want, p.CaptureCount(), tt.pattern)
		require.NoError(t, p.Close())
	}
}

func TestExecCaptures(t *testing.T) {
	p, err := Compile(`(\d+)-(\d+)`)
	require.NoError(t, err)
	defer p.Close()

	m := p.Exec("12-34 56-78")
	require.NotNil(t, m)

	require.Equal(t, 3, m.StringCount())
	require.Equal(t, "12-34", m.Group(0))
	require.Equal(t, "12", m.Group(1))
	require.Equal(t, "34", m.Group(2))

	require.Equal(t, 0, m.GroupStart(0))
	require.Equal(t, 5, m.GroupEnd(0))
	require.Equal(t, 0, m.GroupStart(1))
	require.Equal(t, 2, m.GroupEnd(1))
	require.Equal(t, 3, m.GroupStart(2))
	require.Equal(t, 5, m.GroupEnd(2))
}

func TestExecNoMatch(t *testing.T) {
	p, err := Compile(`\d`)
	require.NoError(t, err)
	defer p.Close()

	require.Nil(t, p.Exec("no digits here"))
}

func TestExecFrom(t *testing.T) {
	p, err := Compile(`(\d+)-(\d+)`)
	require.NoError(t, err)
	defer p.Close()

	m := p.ExecFrom("12-34 56-78", 6)
	require.NotNil(t, m)
	require.Equal(t, "56-78", m.Group(0))
	require.Equal(t, 6, m.GroupStart(0))
	require.Equal(t, 11, m.GroupEnd(0))
}

func TestExecFromWithOptions(t *testing.T) {
	p, err := Compile("b")
	require.NoError(t, err)
	defer p.Close()

	// Anchored at offset 1 of "ab" matches; anchored at 0 does not.
	require.NotNil(t, p.ExecFromWithOptions("ab", 1, ExecAnchored))
	require.Nil(t, p.ExecFromWithOptions("ab", 0, ExecAnchored))
}

func TestExecSubjectWithEmbeddedNUL(t *testing.T) {
	p, err := Compile("b")
	require.NoError(t, err)
	defer p.Close()

	// Subjects may contain interior NUL bytes; the private native copy
	// carries an explicit length, so nothing is truncated.
	m := p.Exec("a\x00b")
	require.NotNil(t, m)
	require.Equal(t, 2, m.GroupStart(0))
}

func TestCaseless(t *testing.T) {
	p, err := CompileWithOptions("abc", Caseless)
	require.NoError(t, err)
	defer p.Close()

	require.NotNil(t, p.Exec("xABCx"))
}

func TestStudyAndCaptureCountInvariant(t *testing.T) {
	p, err := Compile(`(a+)(b+)`)
	require.NoError(t, err)
	defer p.Close()

	before := p.CaptureCount()
	p.StudyWithOptions(StudyExtraNeeded)
	require.Equal(t, before, p.CaptureCount())
	require.Equal(t, before, p.CaptureCount())
}

func TestStudyRefusedWhileIteratorAlive(t *testing.T) {
	p, err := Compile("a")
	require.NoError(t, err)
	defer p.Close()

	it := p.Matches("aaa")

	// The iterator shares the native handle, so replacing study data now
	// could pull it out from under the iterator.
	require.False(t, p.Study())
	require.False(t, p.StudyWithOptions(StudyExtraNeeded))
	require.Nil(t, p.Extra())

	// The live iterator keeps working after the refusal.
	count := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	require.Equal(t, 3, count)
	require.NoError(t, it.Close())

	// Sole owner again: studying succeeds.
	require.True(t, p.StudyWithOptions(StudyExtraNeeded))
	require.NotNil(t, p.Extra())
}

func TestExtraLimits(t *testing.T) {
	p, err := Compile("a+")
	require.NoError(t, err)
	defer p.Close()

	require.True(t, p.StudyWithOptions(StudyExtraNeeded))
	extra := p.Extra()
	require.NotNil(t, extra)

	_, ok := extra.MatchLimit()
	require.False(t, ok)
	_, ok = extra.MatchLimitRecursion()
	require.False(t, ok)

	extra.SetMatchLimit(10000)
	limit, ok := extra.MatchLimit()
	require.True(t, ok)
	require.Equal(t, uint32(10000), limit)

	extra.SetMatchLimitRecursion(500)
	limit, ok = extra.MatchLimitRecursion()
	require.True(t, ok)
	require.Equal(t, uint32(500), limit)

	require.Equal(t, ExtraMatchLimit|ExtraMatchLimitRecursion,
		extra.Flags()&(ExtraMatchLimit|ExtraMatchLimitRecursion))

	// Limits apply: matching still succeeds on a trivial subject.
	require.NotNil(t, p.Exec("aaa"))
}

func TestEnableMarkRequiresExtra(t *testing.T) {
	p, err := Compile("a")
	require.NoError(t, err)
	defer p.Close()

	// No extra block yet: refused.
	require.False(t, p.EnableMark())
	_, ok := p.Mark()
	require.False(t, ok)
}

func TestMark(t *testing.T) {
	p, err := Compile(`(?:a(*MARK:FIRST)|b(*MARK:SECOND))`)
	require.NoError(t, err)
	defer p.Close()

	require.True(t, p.StudyWithOptions(StudyExtraNeeded))
	require.True(t, p.EnableMark())

	require.NotNil(t, p.Exec("b"))
	name, ok := p.Mark()
	require.True(t, ok)
	require.Equal(t, "SECOND", name)
}

func TestNameCountAndTable(t *testing.T) {
	p, err := Compile("(?P<year>\\d{4})-(?P<month>\\d{2})")
	require.NoError(t, err)
	defer p.Close()

	require.Equal(t, 2, p.NameCount())

	table := p.NameTable()
	require.Equal(t, []int{1}, table["year"])
	require.Equal(t, []int{2}, table["month"])
}

func TestNameTableDuplicateNames(t *testing.T) {
	p, err := CompileWithOptions("(?P<x>a)|(?P<x>b)", DupNames)
	require.NoError(t, err)
	defer p.Close()

	require.Equal(t, 2, p.NameCount())

	// Both group numbers accumulate under one key, in the order the
	// engine's table lists them.
	table := p.NameTable()
	require.Equal(t, []int{1, 2}, table["x"])
}

func TestNameTableEmpty(t *testing.T) {
	p, err := Compile("(a)(b)")
	require.NoError(t, err)
	defer p.Close()

	require.Equal(t, 0, p.NameCount())
	require.Empty(t, p.NameTable())
}

func TestExecAgreesWithFirstIteration(t *testing.T) {
	p, err := Compile(`(\w+)@(\w+)`)
	require.NoError(t, err)
	defer p.Close()

	subject := "mail alice@example and bob@test"

	m := p.Exec(subject)
	require.NotNil(t, m)

	it := p.Matches(subject)
	defer it.Close()
	first, ok := it.Next()
	require.True(t, ok)

	require.Equal(t, m.StringCount(), first.StringCount())
	for n := 0; n < m.StringCount(); n++ {
		require.Equal(t, m.GroupStart(n), first.GroupStart(n))
		require.Equal(t, m.GroupEnd(n), first.GroupEnd(n))
		require.Equal(t, m.Group(n), first.Group(n))
	}
}
