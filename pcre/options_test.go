package pcre

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionSetSemantics(t *testing.T) {
	// Union is order-independent and duplicate-insensitive.
	a := Caseless | Multiline | Caseless
	b := Multiline | Caseless
	require.Equal(t, a, b)

	// The zero value is the empty set and equivalent to passing no flags.
	var empty CompileOption
	require.Equal(t, CompileOption(0), empty)
}

func TestOptionNativeValues(t *testing.T) {
	// Spot-check the fixed native encoding of each family.
	require.Equal(t, uint32(0x00000001), uint32(Caseless))
	require.Equal(t, uint32(0x00080000), uint32(DupNames))
	require.Equal(t, uint32(0x20000000), uint32(UCP))
	require.Equal(t, uint32(0x00000080), uint32(ExecNotBOL))
	require.Equal(t, uint32(0x10000000), uint32(ExecNotEmptyAtStart))
	require.Equal(t, uint32(0x0008), uint32(StudyExtraNeeded))
	require.Equal(t, uint32(0x0020), uint32(ExtraMark))

	// Composite newline encodings are unions of their components.
	require.Equal(t, NewlineCR|NewlineLF, NewlineCRLF)
	require.Equal(t, NewlineAny|NewlineCR, NewlineAnyCRLF)

	// ExecPartial is an alias, not a separate bit.
	require.Equal(t, ExecPartialSoft, ExecPartial)
}

func TestCompileOptionString(t *testing.T) {
	tests := []struct {
		opts CompileOption
		want string
	}{
		{0, "0"},
		{Caseless, "Caseless"},
		{Caseless | Multiline, "Caseless|Multiline"},
		{NewlineCRLF, "NewlineCRLF"},
		{NewlineAnyCRLF | DupNames, "NewlineAnyCRLF|DupNames"},
		{CompileOption(0x00000100), "0x100"}, // unnamed bit
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.opts.String())
	}
}

func TestExecOptionString(t *testing.T) {
	require.Equal(t, "0", ExecOption(0).String())
	require.Equal(t, "ExecAnchored|ExecNotEmpty", (ExecAnchored | ExecNotEmpty).String())
	require.Equal(t, "ExecNewlineCRLF", ExecNewlineCRLF.String())
}

func TestStudyAndExtraOptionString(t *testing.T) {
	require.Equal(t, "StudyJITCompile|StudyExtraNeeded", (StudyJITCompile | StudyExtraNeeded).String())
	require.Equal(t, "ExtraStudyData|ExtraMark", (ExtraStudyData | ExtraMark).String())
}
