package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpectedToken(t *testing.T) {
	b, err := New("en")
	require.NoError(t, err)
	msg := b.ExpectedToken(`";"`, `"foo"`)
	require.Contains(t, msg, `";"`)
	require.Contains(t, msg, `"foo"`)
}

func TestEndOfInput(t *testing.T) {
	b, err := New("en")
	require.NoError(t, err)
	require.Equal(t, "end of input", b.EndOfInput())
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	b, err := New("fr")
	require.NoError(t, err)
	require.Equal(t, "end of input", b.EndOfInput())
}
