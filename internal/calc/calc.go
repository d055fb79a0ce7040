// Package calc evaluates vector operations given as text for all supported element domains.
package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/ErikKalkoken/go-set"
	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"

	"github.com/ErikKalkoken/cubemath/pkg/vec3"
)

var (
	ErrInvalidOperand   = errors.New("invalid operand")
	ErrNotSupported     = errors.New("operation not supported for domain")
	ErrUnknownDomain    = errors.New("unknown domain")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Domain identifies the element type of the vectors in a calculation.
type Domain string

const (
	DomainNarrowUnsigned Domain = "c" // uint8
	DomainSigned         Domain = "i" // int64
	DomainUnsigned       Domain = "u" // uint64
	DomainFloat          Domain = "f" // float32
	DomainDouble         Domain = "d" // float64
)

var domains = set.Of(DomainNarrowUnsigned, DomainSigned, DomainUnsigned, DomainFloat, DomainDouble)

// ParseDomain returns the domain for a name.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if !domains.Contains(d) {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownDomain)
	}
	return d, nil
}

// Operation is a vector operation.
type Operation string

const (
	OpAdd       Operation = "add"
	OpCross     Operation = "cross"
	OpDiv       Operation = "div"
	OpDot       Operation = "dot"
	OpEqual     Operation = "eq"
	OpLength    Operation = "length"
	OpMul       Operation = "mul"
	OpNeg       Operation = "neg"
	OpNormalize Operation = "normalize"
	OpScale     Operation = "scale"
	OpSub       Operation = "sub"
)

// Operations grouped by the kind of right hand operand they take.
// OpMul takes either a scalar or a vector.
var (
	vectorOperations = set.Of(OpAdd, OpCross, OpDot, OpEqual, OpSub)
	scalarOperations = set.Of(OpDiv, OpScale)
	unaryOperations  = set.Of(OpLength, OpNeg, OpNormalize)
	operations       = set.Union(vectorOperations, scalarOperations, unaryOperations, set.Of(OpMul))
)

// Operations returns the names of all operations in alphabetical order.
func Operations() []Operation {
	return slices.Sorted(operations.All())
}

// ParseOperation returns the operation for a name.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	if !operations.Contains(op) {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownOperation)
	}
	return op, nil
}

// IsUnary reports whether an operation works without a right hand operand.
func (op Operation) IsUnary() bool {
	return unaryOperations.Contains(op)
}

// Format defines how numbers are rendered in results.
type Format uint

const (
	FormatPlain Format = iota // shortest representation which parses back to the same value
	FormatHuman               // with thousands separators
)

// Request is a calculation request.
//
// Operands are either vectors given as three comma separated components,
// e.g. "7,8,3" or "(7, 8, 3)", or scalars, e.g. "2".
type Request struct {
	Domain string `yaml:"domain"`
	Op     string `yaml:"op"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right,omitempty"`
}

func (r Request) String() string {
	s := fmt.Sprintf("%s %s %s", r.Domain, r.Op, r.Left)
	if r.Right != "" {
		s += " " + r.Right
	}
	return s
}

// Calculator evaluates requests.
type Calculator struct {
	format Format
}

// New returns a new calculator which renders numbers in format f.
func New(f Format) *Calculator {
	c := &Calculator{format: f}
	return c
}

// Evaluate evaluates a request and returns the rendered result.
//
// Native faults of the element domain are not intercepted,
// e.g. an integer division by zero panics.
func (c *Calculator) Evaluate(r Request) (string, error) {
	d, err := ParseDomain(r.Domain)
	if err != nil {
		return "", err
	}
	op, err := ParseOperation(r.Op)
	if err != nil {
		return "", err
	}
	var out string
	switch d {
	case DomainNarrowUnsigned:
		out, err = evaluate(unsignedDomain[uint8](8, c.format), op, r.Left, r.Right)
	case DomainSigned:
		out, err = evaluate(signedDomain[int64](64, c.format), op, r.Left, r.Right)
	case DomainUnsigned:
		out, err = evaluate(unsignedDomain[uint64](64, c.format), op, r.Left, r.Right)
	case DomainFloat:
		out, err = evaluate(floatDomain[float32](32, c.format), op, r.Left, r.Right)
	case DomainDouble:
		out, err = evaluate(floatDomain[float64](64, c.format), op, r.Left, r.Right)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", r, err)
	}
	slog.Debug("evaluated", "request", r, "result", out)
	return out, nil
}

// elementDomain provides the domain specific functions for element type T.
type elementDomain[T vec3.Number] struct {
	parse  func(s string) (T, error)
	format func(x T) string

	// only defined for float domains
	length     func(v vec3.Vector3[T]) T
	normalized func(v vec3.Vector3[T]) vec3.Vector3[T]
}

func signedDomain[T constraints.Signed](bits int, f Format) elementDomain[T] {
	return elementDomain[T]{
		parse: func(s string) (T, error) {
			x, err := strconv.ParseInt(s, 10, bits)
			return T(x), err
		},
		format: func(x T) string {
			if f == FormatHuman {
				return humanize.Comma(int64(x))
			}
			return strconv.FormatInt(int64(x), 10)
		},
	}
}

func unsignedDomain[T constraints.Unsigned](bits int, f Format) elementDomain[T] {
	return elementDomain[T]{
		parse: func(s string) (T, error) {
			x, err := strconv.ParseUint(s, 10, bits)
			return T(x), err
		},
		format: func(x T) string {
			if f == FormatHuman {
				return humanize.BigComma(new(big.Int).SetUint64(uint64(x)))
			}
			return strconv.FormatUint(uint64(x), 10)
		},
	}
}

func floatDomain[T constraints.Float](bits int, f Format) elementDomain[T] {
	return elementDomain[T]{
		parse: func(s string) (T, error) {
			x, err := strconv.ParseFloat(s, bits)
			return T(x), err
		},
		format: func(x T) string {
			if f == FormatHuman {
				if bits == 32 {
					return humanize.CommafWithDigits(float64(x), 7)
				}
				return humanize.Commaf(float64(x))
			}
			return strconv.FormatFloat(float64(x), 'g', -1, bits)
		},
		length:     vec3.Length[T],
		normalized: vec3.Normalized[T],
	}
}

func evaluate[T vec3.Number](ed elementDomain[T], op Operation, left, right string) (string, error) {
	a, err := parseVector(ed, left)
	if err != nil {
		return "", err
	}
	if op.IsUnary() {
		if right != "" {
			return "", fmt.Errorf("%s takes no second operand: %w", op, ErrInvalidOperand)
		}
		switch op {
		case OpNeg:
			return formatVector(ed, a.Neg()), nil
		case OpLength:
			if ed.length == nil {
				return "", fmt.Errorf("%s: %w", op, ErrNotSupported)
			}
			return ed.format(ed.length(a)), nil
		case OpNormalize:
			if ed.normalized == nil {
				return "", fmt.Errorf("%s: %w", op, ErrNotSupported)
			}
			return formatVector(ed, ed.normalized(a)), nil
		}
	}
	if scalarOperations.Contains(op) || op == OpMul && !isVector(right) {
		s, err := parseScalar(ed, right)
		if err != nil {
			return "", err
		}
		switch op {
		case OpScale:
			return formatVector(ed, a.Scale(s)), nil
		case OpDiv:
			return formatVector(ed, a.Div(s)), nil
		case OpMul:
			return formatVector(ed, a.Mul(vec3.S(s))), nil
		}
	}
	b, err := parseVector(ed, right)
	if err != nil {
		return "", err
	}
	switch op {
	case OpAdd:
		return formatVector(ed, a.Add(b)), nil
	case OpSub:
		return formatVector(ed, a.Sub(b)), nil
	case OpCross:
		return formatVector(ed, a.Cross(b)), nil
	case OpMul:
		return formatVector(ed, a.Mul(b)), nil
	case OpDot:
		return ed.format(a.Dot(b)), nil
	case OpEqual:
		return strconv.FormatBool(a.Equal(b)), nil
	}
	return "", fmt.Errorf("%s: %w", op, ErrUnknownOperation)
}

func isVector(s string) bool {
	return strings.Contains(s, ",")
}

func parseScalar[T vec3.Number](ed elementDomain[T], s string) (T, error) {
	x, err := ed.parse(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("scalar %q: %w: %w", s, ErrInvalidOperand, err)
	}
	return x, nil
}

func parseVector[T vec3.Number](ed elementDomain[T], s string) (vec3.Vector3[T], error) {
	var v vec3.Vector3[T]
	p := strings.Split(strings.Trim(strings.TrimSpace(s), "()"), ",")
	if len(p) != 3 {
		return v, fmt.Errorf("vector %q: need 3 components: %w", s, ErrInvalidOperand)
	}
	for i, x := range p {
		c, err := ed.parse(strings.TrimSpace(x))
		if err != nil {
			return v, fmt.Errorf("vector %q: %w: %w", s, ErrInvalidOperand, err)
		}
		v.Set(i, c)
	}
	return v, nil
}

func formatVector[T vec3.Number](ed elementDomain[T], v vec3.Vector3[T]) string {
	return fmt.Sprintf("(%s, %s, %s)", ed.format(v.X()), ed.format(v.Y()), ed.format(v.Z()))
}
