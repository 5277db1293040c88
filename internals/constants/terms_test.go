package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerm(t *testing.T) {
	for _, in := range []string{"FIRST", "first", " Second ", "third", "FINAL"} {
		term, err := ParseTerm(in)
		require.NoError(t, err, in)
		assert.True(t, term.Valid())
	}

	_, err := ParseTerm("FOURTH")
	assert.Error(t, err)
	_, err = ParseTerm("")
	assert.Error(t, err)
}

func TestTermValueAndScan(t *testing.T) {
	v, err := TermFinal.Value()
	require.NoError(t, err)
	assert.Equal(t, "FINAL", v)

	_, err = Term("SUMMER").Value()
	assert.Error(t, err)

	var term Term
	require.NoError(t, term.Scan([]byte("THIRD")))
	assert.Equal(t, TermThird, term)
	require.NoError(t, term.Scan("FIRST"))
	assert.Equal(t, TermFirst, term)
	assert.Error(t, term.Scan(42))
}
