// SPDX-License-Identifier: MIT
// Package: polarbayes/frame
//
// kind.go: value kinds and the widening rank table.
//
// Purpose:
//   • Map the Arrow types a Frame accepts onto four kinds.
//   • Decide the common kind of heterogeneous columns with an explicit rank
//     table instead of relying on implicit coercion during concatenation.
//
// Rank table (higher wins):
//
//	Bool 0 < Int 1 < Float 2 < String 3

package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Kind is the value type of a column.
type Kind uint8

// Supported kinds. KindUnknown is never produced by a successful call.
const (
	KindUnknown Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// kindRank is the widening rank of each kind; Supertype picks the maximum.
var kindRank = map[Kind]int{
	KindBool:   0,
	KindInt:    1,
	KindFloat:  2,
	KindString: 3,
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether k is Int or Float.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// DataType returns the Arrow type backing k.
// KindUnknown maps to arrow.Null.
func (k Kind) DataType() arrow.DataType {
	switch k {
	case KindBool:
		return arrow.FixedWidthTypes.Boolean
	case KindInt:
		return arrow.PrimitiveTypes.Int64
	case KindFloat:
		return arrow.PrimitiveTypes.Float64
	case KindString:
		return arrow.BinaryTypes.String
	default:
		return arrow.Null
	}
}

// KindOf maps an Arrow type onto its Kind.
// Returns ErrUnsupportedType for anything but Boolean, Int64, Float64 and String.
func KindOf(dt arrow.DataType) (Kind, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return KindBool, nil
	case arrow.INT64:
		return KindInt, nil
	case arrow.FLOAT64:
		return KindFloat, nil
	case arrow.STRING:
		return KindString, nil
	default:
		return KindUnknown, fmt.Errorf("%s: %w", dt, ErrUnsupportedType)
	}
}

// ParseKind parses the names produced by Kind.String. "integer", "double"
// and "str" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bool", "boolean":
		return KindBool, nil
	case "int", "integer", "int64":
		return KindInt, nil
	case "float", "double", "float64":
		return KindFloat, nil
	case "string", "str":
		return KindString, nil
	default:
		return KindUnknown, fmt.Errorf("kind %q: %w", s, ErrUnsupportedType)
	}
}

// Supertype returns the widest kind among first and rest according to the
// rank table: String dominates everything, Float dominates Int and Bool, Int
// dominates Bool. Unknown kinds are ignored unless every kind is unknown.
//
// Complexity: O(len(rest)).
func Supertype(first Kind, rest ...Kind) Kind {
	best := first
	for _, k := range rest {
		if rankOf(k) > rankOf(best) {
			best = k
		}
	}

	return best
}

// rankOf returns the widening rank, -1 for unknown kinds.
func rankOf(k Kind) int {
	r, ok := kindRank[k]
	if !ok {
		return -1
	}

	return r
}

// canWiden reports whether a value of kind from may be cast to kind to.
func canWiden(from, to Kind) bool {
	return rankOf(from) >= 0 && rankOf(from) <= rankOf(to)
}
