package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/segtree"
)

// ErrMalformedInput signals input which cannot be read as a sequence of integers.
var ErrMalformedInput = errors.New("cli: malformed input")

// ErrUnknownOp signals an unknown aggregate operator name.
var ErrUnknownOp = errors.New("cli: unknown aggregate operator")

// Op selects the aggregate operator of a tree.
type Op int

// Aggregate operators
const (
	OpSum Op = iota
	OpMin
	OpMax
)

var opNames = [...]string{"sum", "min", "max"}
var opPlurals = [...]string{"sums", "minima", "maxima"}

func (op Op) String() string {
	if op < OpSum || op > OpMax {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// ParseOp reads an operator name, which is one of "sum", "min" or "max"
// (case insensitive).
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Op(i), nil
		}
	}
	return OpSum, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Monoid returns the monoid for op.
func (op Op) Monoid() segtree.Monoid[int64] {
	switch op {
	case OpMin:
		return segtree.Min{}
	case OpMax:
		return segtree.Max{}
	}
	return segtree.Sum{}
}

// Build creates a tree over elements, aggregating with op.
func (op Op) Build(elements []int64) (*segtree.Tree[int64], error) {
	return segtree.Build(op.Monoid(), elements)
}

// ParseElements reads whitespace-separated integers from line.
// An empty line or a non-numeric token is rejected with ErrMalformedInput.
func ParseElements(line string) ([]int64, error) {
	return parseInts(strings.Fields(line))
}

func parseInts(fields []string) ([]int64, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrMalformedInput)
	}
	elements := make([]int64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d is not an integer: %q", ErrMalformedInput, i, f)
		}
		elements[i] = x
	}
	return elements, nil
}

func parseIndex(field string) (int, error) {
	i, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: index is not an integer: %q", ErrMalformedInput, field)
	}
	return i, nil
}
