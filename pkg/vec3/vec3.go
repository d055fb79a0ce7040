// Package vec3 provides a generic three component vector for geometry and color computations.
//
// A [Vector3] can hold any integer or float element type.
// Arithmetic follows the native semantics of the element type,
// e.g. unsigned subtraction wraps and integer division by zero panics.
//
// Equality depends on the element domain:
// integer vectors compare exactly, while float vectors compare with [epsilon.Equal].
package vec3

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/ErikKalkoken/cubemath/pkg/epsilon"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Number is the constraint for element types of a vector.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector3 is a vector with the three components x, y and z.
//
// The zero value is the zero vector.
// Vectors are values: assigning a vector creates an independent copy.
type Vector3[T Number] struct {
	e [3]T
}

// Named vector types for the supported element domains.
type (
	Vec3c = Vector3[uint8]
	Vec3i = Vector3[int64]
	Vec3u = Vector3[uint64]
	Vec3f = Vector3[float32]
	Vec3d = Vector3[float64]
)

// New returns a vector with the components x, y and z.
func New[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{e: [3]T{x, y, z}}
}

// Fill returns a vector with all components set to s.
func Fill[T Number](s T) Vector3[T] {
	return Vector3[T]{e: [3]T{s, s, s}}
}

// FromArray returns a vector from an array of components in x, y, z order.
func FromArray[T Number](a [3]T) Vector3[T] {
	return Vector3[T]{e: a}
}

// Zero returns the zero vector.
func Zero[T Number]() Vector3[T] {
	return Vector3[T]{}
}

// Array returns the components of a vector in x, y, z order.
func (v Vector3[T]) Array() [3]T {
	return v.e
}

// At returns the component at index i, where x is 0, y is 1 and z is 2.
// It panics with [ErrIndexOutOfRange] for any other index.
func (v Vector3[T]) At(i int) T {
	mustBeIndex(i)
	return v.e[i]
}

// Set updates the component at index i.
// It panics with [ErrIndexOutOfRange] when i is not 0, 1 or 2.
func (v *Vector3[T]) Set(i int, x T) {
	mustBeIndex(i)
	v.e[i] = x
}

func (v Vector3[T]) X() T {
	return v.e[0]
}

func (v Vector3[T]) Y() T {
	return v.e[1]
}

func (v Vector3[T]) Z() T {
	return v.e[2]
}

func mustBeIndex(i int) {
	if i < 0 || i > 2 {
		panic(fmt.Errorf("vector component %d: %w", i, ErrIndexOutOfRange))
	}
}

// Equal reports whether two vectors are equal.
//
// Vectors with integer elements are equal when all components are identical.
// Vectors with float elements are equal when each pair of components
// is equal according to [epsilon.Equal].
// Use the == operator to compare float vectors exactly.
func (v Vector3[T]) Equal(w Vector3[T]) bool {
	switch domainOf[T]() {
	case domainFloat32:
		return v.equalFunc(w, func(a, b T) bool {
			return epsilon.Equal(float32(a), float32(b))
		})
	case domainFloat64:
		return v.equalFunc(w, func(a, b T) bool {
			return epsilon.Equal(float64(a), float64(b))
		})
	}
	return v == w
}

// NotEqual reports whether two vectors are not equal. See [Vector3.Equal].
func (v Vector3[T]) NotEqual(w Vector3[T]) bool {
	return !v.Equal(w)
}

func (v Vector3[T]) equalFunc(w Vector3[T], eq func(a, b T) bool) bool {
	for i := range v.e {
		if !eq(v.e[i], w.e[i]) {
			return false
		}
	}
	return true
}

type domain uint

const (
	domainInteger domain = iota
	domainFloat32
	domainFloat64
)

// domainOf returns the element domain of T.
// Named types are resolved to the domain of their underlying type.
func domainOf[T Number]() domain {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return domainFloat32
	case reflect.Float64:
		return domainFloat64
	}
	return domainInteger
}

// Add returns the sum v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return New(v.e[0]+w.e[0], v.e[1]+w.e[1], v.e[2]+w.e[2])
}

// AddAssign adds w to v.
func (v *Vector3[T]) AddAssign(w Vector3[T]) {
	*v = v.Add(w)
}

// Sub returns the difference v - w.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return New(v.e[0]-w.e[0], v.e[1]-w.e[1], v.e[2]-w.e[2])
}

// SubAssign subtracts w from v.
func (v *Vector3[T]) SubAssign(w Vector3[T]) {
	*v = v.Sub(w)
}

// Neg returns the vector with all components negated.
func (v Vector3[T]) Neg() Vector3[T] {
	return New(-v.e[0], -v.e[1], -v.e[2])
}

// Scale returns v with each component multiplied by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return New(v.e[0]*s, v.e[1]*s, v.e[2]*s)
}

// ScaleAssign multiplies each component of v by s.
func (v *Vector3[T]) ScaleAssign(s T) {
	*v = v.Scale(s)
}

// Div returns v with each component divided by s.
// Integer division by zero panics.
func (v Vector3[T]) Div(s T) Vector3[T] {
	return New(v.e[0]/s, v.e[1]/s, v.e[2]/s)
}

// DivAssign divides each component of v by s.
func (v *Vector3[T]) DivAssign(s T) {
	*v = v.Div(s)
}

// Cross returns the cross product v × w.
func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	a, b := v.e, w.e
	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

// CrossAssign replaces v with the cross product v × w.
func (v *Vector3[T]) CrossAssign(w Vector3[T]) {
	*v = v.Cross(w)
}

// Dot returns the dot product of v and w.
func (v Vector3[T]) Dot(w Vector3[T]) T {
	return v.e[0]*w.e[0] + v.e[1]*w.e[1] + v.e[2]*w.e[2]
}

// Factor is the right hand operand of a multiplication,
// which is either a [Scalar] or a [Vector3].
type Factor[T Number] interface {
	multiply(v Vector3[T]) Vector3[T]
}

// Scalar is a scalar factor for [Vector3.Mul].
type Scalar[T Number] struct {
	Value T
}

// S returns a new scalar factor.
func S[T Number](x T) Scalar[T] {
	return Scalar[T]{Value: x}
}

func (s Scalar[T]) multiply(v Vector3[T]) Vector3[T] {
	return v.Scale(s.Value)
}

func (v Vector3[T]) multiply(u Vector3[T]) Vector3[T] {
	return u.Cross(v)
}

// Mul returns the product of v and f.
//
// When f is a [Scalar] this is the same as [Vector3.Scale],
// when f is a vector it is the cross product [Vector3.Cross].
func (v Vector3[T]) Mul(f Factor[T]) Vector3[T] {
	return f.multiply(v)
}

// MulAssign replaces v with the product of v and f. See [Vector3.Mul].
func (v *Vector3[T]) MulAssign(f Factor[T]) {
	*v = v.Mul(f)
}

// Length returns the magnitude of a vector.
func Length[T constraints.Float](v Vector3[T]) T {
	return T(length(v))
}

func length[T constraints.Float](v Vector3[T]) float64 {
	var sum float64
	for _, x := range v.e {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// Normalized returns a vector with the same direction as v and a length of 1.
//
// The magnitude is calculated in float64 and the components are rounded to T.
// The zero vector has no direction and results in NaN components.
func Normalized[T constraints.Float](v Vector3[T]) Vector3[T] {
	l := length(v)
	for i, x := range v.e {
		v.e[i] = T(float64(x) / l)
	}
	return v
}

// Normalize scales v to a length of 1. See [Normalized].
func Normalize[T constraints.Float](v *Vector3[T]) {
	*v = Normalized(*v)
}
