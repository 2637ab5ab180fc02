package obf

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Hashable is implemented by every element type a filter accepts. HashBytes
// must return the same bytes for equal values and must not depend on memory
// layout or pointer identity.
type Hashable interface {
	HashBytes() []byte
}

// String adapts a string to Hashable.
type String string

func (s String) HashBytes() []byte {
	return []byte(s)
}

// Bytes adapts a byte slice to Hashable. The slice is hashed as is, so callers
// must not mutate it between Add and Contains if they expect a match.
type Bytes []byte

func (b Bytes) HashBytes() []byte {
	return b
}

// Int adapts any integer type to Hashable. The value is widened to 64 bits
// and encoded little-endian, so every integer type has a fixed 8 byte
// representation.
type Int[T constraints.Integer] struct {
	V T
}

// IntOf wraps v as an Int element.
func IntOf[T constraints.Integer](v T) Int[T] {
	return Int[T]{V: v}
}

func (i Int[T]) HashBytes() []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), uint64(i.V))
}
