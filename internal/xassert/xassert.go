// Package xassert extends the testify assert package with additional test helpers.
package xassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"

	"github.com/ErikKalkoken/cubemath/pkg/epsilon"
	"github.com/ErikKalkoken/cubemath/pkg/vec3"
)

// EqualVector asserts that two vectors are equal according to [vec3.Vector3.Equal].
func EqualVector[T vec3.Number](t *testing.T, want, got vec3.Vector3[T]) bool {
	t.Helper()
	return assert.Truef(t, got.Equal(want), "Not equal:\nexpected: %v\nactual  : %v", want.Array(), got.Array())
}

// NotEqualVector asserts that two vectors are not equal according to [vec3.Vector3.Equal].
func NotEqualVector[T vec3.Number](t *testing.T, want, got vec3.Vector3[T]) bool {
	t.Helper()
	return assert.Truef(t, got.NotEqual(want), "Should not be equal:\nexpected: %v\nactual  : %v", want.Array(), got.Array())
}

// EqualFloat asserts that got is equal to want according to [epsilon.Equal].
func EqualFloat[T constraints.Float](t *testing.T, want, got T) bool {
	t.Helper()
	return assert.Truef(t, epsilon.Equal(want, got), "%v is not almost equal to %v (+/- %g)", got, want, epsilon.Epsilon)
}

// Equal asserts that two objects are equal.
// This variant is type safe.
func Equal[T any](t *testing.T, want, got T) bool {
	t.Helper()
	return assert.Equal(t, want, got)
}
