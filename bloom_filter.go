package obf

import (
	"github.com/bits-and-blooms/bitset"
)

// BasicFilter is a classic bloom filter over a bit array. Every hash round of
// an added element sets one bit; an element is reported present when all of
// its bits are set.
//
// A BasicFilter is not safe for concurrent use. Callers sharing one between
// goroutines must guard it with their own lock.
type BasicFilter[T Hashable] struct {
	_ noCopy

	bits         *bitset.BitSet
	bitArraySize uint64
	hashFuncNum  uint64
}

// NewBasicFilter creates a zeroed BasicFilter sized for capacity elements at
// the given false positive rate. It returns ErrInvalidParameter if the rate is
// not in (0, 1) or capacity is zero.
func NewBasicFilter[T Hashable](falsePositiveRate float64, capacity uint64) (*BasicFilter[T], error) {
	bitArraySize, hashFuncNum, err := EstimateParameters(falsePositiveRate, capacity)
	if err != nil {
		return nil, err
	}

	return &BasicFilter[T]{
		bits:         bitset.New(uint(bitArraySize)),
		bitArraySize: bitArraySize,
		hashFuncNum:  hashFuncNum,
	}, nil
}

// Clear unsets every bit.
func (bf *BasicFilter[T]) Clear() {
	if bf.bits != nil {
		bf.bits.ClearAll()
	}
}

// Add adds an element to the filter.
func (bf *BasicFilter[T]) Add(elem T) {
	if bf.bits == nil {
		return
	}

	h := newRoundHasher(elem.HashBytes())
	for i := uint64(0); i < bf.hashFuncNum; i++ {
		bf.bits.Set(uint(h.at(i, bf.bitArraySize)))
	}
}

// Contains reports whether elem might have been added. False means it was
// definitely never added.
func (bf *BasicFilter[T]) Contains(elem T) bool {
	if bf.bits == nil {
		return false
	}

	h := newRoundHasher(elem.HashBytes())
	for i := uint64(0); i < bf.hashFuncNum; i++ {
		if !bf.bits.Test(uint(h.at(i, bf.bitArraySize))) {
			return false
		}
	}
	return true
}

// BitArraySize returns the number of cells in the bit array.
func (bf *BasicFilter[T]) BitArraySize() uint64 {
	return bf.bitArraySize
}

// HashFuncNum returns the number of hash rounds per element.
func (bf *BasicFilter[T]) HashFuncNum() uint64 {
	return bf.hashFuncNum
}

// FillRatio returns the fraction of set bits, in [0, 1].
func (bf *BasicFilter[T]) FillRatio() float64 {
	if bf.bits == nil || bf.bitArraySize == 0 {
		return 0
	}
	return float64(bf.bits.Count()) / float64(bf.bitArraySize)
}

// Move transfers the bit array and sizing to a new filter and returns it. The
// receiver is left empty: Add is a no-op and Contains reports false.
func (bf *BasicFilter[T]) Move() *BasicFilter[T] {
	moved := &BasicFilter[T]{
		bits:         bf.bits,
		bitArraySize: bf.bitArraySize,
		hashFuncNum:  bf.hashFuncNum,
	}

	bf.bits = nil
	bf.bitArraySize = 0
	bf.hashFuncNum = 0
	return moved
}

// Swap exchanges the contents of two filters.
func (bf *BasicFilter[T]) Swap(other *BasicFilter[T]) {
	bf.bits, other.bits = other.bits, bf.bits
	bf.bitArraySize, other.bitArraySize = other.bitArraySize, bf.bitArraySize
	bf.hashFuncNum, other.hashFuncNum = other.hashFuncNum, bf.hashFuncNum
}
