package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/cubemath/internal/calc"
)

func TestLogLevelFlag(t *testing.T) {
	t.Run("can set known levels", func(t *testing.T) {
		var l logLevelFlag
		require.NoError(t, l.Set("debug"))
		assert.Equal(t, slog.LevelDebug, l.value)
		assert.Equal(t, "DEBUG", l.String())
	})
	t.Run("should return error for unknown levels", func(t *testing.T) {
		var l logLevelFlag
		assert.Error(t, l.Set("verbose"))
	})
}

func TestEvaluateArgs(t *testing.T) {
	c := calc.New(calc.FormatPlain)
	t.Run("should print result of binary operation", func(t *testing.T) {
		var buf bytes.Buffer
		err := evaluateArgs(c, &buf, "i", "cross", []string{"7,8,3", "1,3,4"})
		require.NoError(t, err)
		assert.Equal(t, "(23, -25, 13)\n", buf.String())
	})
	t.Run("should print result of unary operation", func(t *testing.T) {
		var buf bytes.Buffer
		err := evaluateArgs(c, &buf, "d", "length", []string{"0,3,4"})
		require.NoError(t, err)
		assert.Equal(t, "5\n", buf.String())
	})
	t.Run("should return error when operation is missing", func(t *testing.T) {
		var buf bytes.Buffer
		err := evaluateArgs(c, &buf, "i", "", []string{"7,8,3"})
		assert.Error(t, err)
	})
	t.Run("should return error when operands are missing", func(t *testing.T) {
		var buf bytes.Buffer
		err := evaluateArgs(c, &buf, "i", "add", nil)
		assert.Error(t, err)
	})
	t.Run("should return error for invalid requests", func(t *testing.T) {
		var buf bytes.Buffer
		err := evaluateArgs(c, &buf, "i", "normalize", []string{"7,8,3"})
		assert.ErrorIs(t, err, calc.ErrNotSupported)
		assert.Empty(t, buf.String())
	})
}

func TestEvaluateFile(t *testing.T) {
	c := calc.New(calc.FormatPlain)
	writeFile := func(t *testing.T, data string) string {
		p := filepath.Join(t.TempDir(), "cases.yaml")
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	t.Run("should print results of all cases", func(t *testing.T) {
		p := writeFile(t, `
cases:
  - domain: i
    op: add
    left: "7,8,3"
    right: "1,3,4"
  - domain: i
    op: div
    left: "7,8,3"
    right: "2"
`)
		var buf bytes.Buffer
		err := evaluateFile(c, &buf, p)
		require.NoError(t, err)
		assert.Equal(t, "i add 7,8,3 1,3,4 = (8, 11, 7)\ni div 7,8,3 2 = (3, 4, 1)\n", buf.String())
	})
	t.Run("should report failed cases and continue", func(t *testing.T) {
		p := writeFile(t, `
cases:
  - domain: u
    op: length
    left: "1,2,3"
  - domain: i
    op: dot
    left: "7,8,3"
    right: "1,3,4"
`)
		var buf bytes.Buffer
		err := evaluateFile(c, &buf, p)
		assert.ErrorIs(t, err, errBatchFailed)
		assert.Contains(t, buf.String(), "ERROR:")
		assert.Contains(t, buf.String(), "i dot 7,8,3 1,3,4 = 43\n")
	})
	t.Run("should return error when file does not exist", func(t *testing.T) {
		var buf bytes.Buffer
		err := evaluateFile(c, &buf, filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
