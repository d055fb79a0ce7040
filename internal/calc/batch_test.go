package calc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/cubemath/internal/calc"
)

func TestLoadBatch(t *testing.T) {
	t.Run("can load requests", func(t *testing.T) {
		doc := `
cases:
  - domain: i
    op: cross
    left: "7,8,3"
    right: "1,3,4"
  - domain: f
    op: normalize
    left: "(7, 8, 3)"
`
		got, err := calc.LoadBatch(strings.NewReader(doc))
		require.NoError(t, err)
		want := []calc.Request{
			{Domain: "i", Op: "cross", Left: "7,8,3", Right: "1,3,4"},
			{Domain: "f", Op: "normalize", Left: "(7, 8, 3)"},
		}
		assert.Equal(t, want, got)
	})
	t.Run("should return error for invalid documents", func(t *testing.T) {
		_, err := calc.LoadBatch(strings.NewReader("cases: [domain: i"))
		assert.Error(t, err)
	})
}

func TestRunBatch(t *testing.T) {
	c := calc.New(calc.FormatPlain)
	reqs := []calc.Request{
		{Domain: "i", Op: "dot", Left: "7,8,3", Right: "1,3,4"},
		{Domain: "i", Op: "normalize", Left: "7,8,3"},
		{Domain: "u", Op: "cross", Left: "9,5,1", Right: "4,2,6"},
	}
	got := c.RunBatch(reqs)
	require.Len(t, got, 3)
	assert.Equal(t, "43", got[0].Output)
	assert.NoError(t, got[0].Err)
	assert.ErrorIs(t, got[1].Err, calc.ErrNotSupported)
	assert.Equal(t, "(28, 18446744073709551566, 18446744073709551614)", got[2].Output)
	assert.Equal(t, reqs[2], got[2].Request)
}
