package obf

// OrdinalFilter is a bloom filter whose cells record the highest hash round
// that ever wrote to them. Round i of an added element raises its cell to at
// least i, and an element is reported present only when every round i finds a
// cell value of at least i. Cells never decrease until Clear.
//
// Cells are uint8, so the number of rounds is capped at MaxOrdinalRounds.
//
// An OrdinalFilter is not safe for concurrent use. Callers sharing one between
// goroutines must guard it with their own lock.
type OrdinalFilter[T Hashable] struct {
	_ noCopy

	cells        []uint8
	bitArraySize uint64
	hashFuncNum  uint64
}

// NewOrdinalFilter creates a zeroed OrdinalFilter sized for capacity elements
// at the given false positive rate. Besides the ErrInvalidParameter cases of
// NewBasicFilter it returns ErrTooManyRounds when the rate would need more
// than MaxOrdinalRounds rounds.
func NewOrdinalFilter[T Hashable](falsePositiveRate float64, capacity uint64) (*OrdinalFilter[T], error) {
	bitArraySize, hashFuncNum, err := estimateOrdinalParameters(falsePositiveRate, capacity)
	if err != nil {
		return nil, err
	}

	return &OrdinalFilter[T]{
		cells:        make([]uint8, bitArraySize),
		bitArraySize: bitArraySize,
		hashFuncNum:  hashFuncNum,
	}, nil
}

// Clear resets every cell to zero.
func (of *OrdinalFilter[T]) Clear() {
	clear(of.cells)
}

// Add adds an element to the filter. Rounds are numbered from 1.
func (of *OrdinalFilter[T]) Add(elem T) {
	if of.cells == nil {
		return
	}

	h := newRoundHasher(elem.HashBytes())
	for i := uint64(1); i <= of.hashFuncNum; i++ {
		idx := h.at(i, of.bitArraySize)
		if uint64(of.cells[idx]) < i {
			of.cells[idx] = uint8(i)
		}
	}
}

// Contains reports whether elem might have been added. False means it was
// definitely never added.
func (of *OrdinalFilter[T]) Contains(elem T) bool {
	if of.cells == nil {
		return false
	}

	h := newRoundHasher(elem.HashBytes())
	for i := uint64(1); i <= of.hashFuncNum; i++ {
		if uint64(of.cells[h.at(i, of.bitArraySize)]) < i {
			return false
		}
	}
	return true
}

// BitArraySize returns the number of cells.
func (of *OrdinalFilter[T]) BitArraySize() uint64 {
	return of.bitArraySize
}

// HashFuncNum returns the number of hash rounds per element.
func (of *OrdinalFilter[T]) HashFuncNum() uint64 {
	return of.hashFuncNum
}

// FillRatio returns the fraction of non-zero cells, in [0, 1].
func (of *OrdinalFilter[T]) FillRatio() float64 {
	if of.bitArraySize == 0 {
		return 0
	}

	var used uint64
	for _, c := range of.cells {
		if c != 0 {
			used++
		}
	}
	return float64(used) / float64(of.bitArraySize)
}

// Move transfers the cells and sizing to a new filter and returns it. The
// receiver is left empty: Add is a no-op and Contains reports false.
func (of *OrdinalFilter[T]) Move() *OrdinalFilter[T] {
	moved := &OrdinalFilter[T]{
		cells:        of.cells,
		bitArraySize: of.bitArraySize,
		hashFuncNum:  of.hashFuncNum,
	}

	of.cells = nil
	of.bitArraySize = 0
	of.hashFuncNum = 0
	return moved
}

// Swap exchanges the contents of two filters.
func (of *OrdinalFilter[T]) Swap(other *OrdinalFilter[T]) {
	of.cells, other.cells = other.cells, of.cells
	of.bitArraySize, other.bitArraySize = other.bitArraySize, of.bitArraySize
	of.hashFuncNum, other.hashFuncNum = other.hashFuncNum, of.hashFuncNum
}
