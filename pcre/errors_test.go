package pcre

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompilationErrorFormat(t *testing.T) {
	withMsg := &CompilationError{Message: "missing )", Offset: 4}
	require.Equal(t, "pcre: compilation failed at offset 4: missing )", withMsg.Error())

	noMsg := &CompilationError{Offset: 7}
	require.Equal(t, "pcre: compilation failed at offset 7", noMsg.Error())
}

func TestCompilationErrorFields(t *testing.T) {
	_, err := Compile("(")
	require.Error(t, err)

	var ce *CompilationError
	require.ErrorAs(t, err, &ce)
	require.NotEmpty(t, ce.Message)
	require.Equal(t, 1, ce.Offset)
}

func TestCompileRejectsEmbeddedNUL(t *testing.T) {
	_, err := Compile("a\x00b")
	require.ErrorIs(t, err, ErrEmbeddedNUL)

	// Distinct from a compilation failure.
	var ce *CompilationError
	require.False(t, errors.As(err, &ce))
}
