package obf

import (
	"errors"
	"fmt"
	"math"
)

// Maximum number of hash rounds an OrdinalFilter can record in a uint8 cell.
const MaxOrdinalRounds = math.MaxUint8

var (
	ErrInvalidParameter = errors.New("obf: invalid parameter")
	ErrTooManyRounds    = fmt.Errorf("%w: hash round count exceeds %d", ErrInvalidParameter, MaxOrdinalRounds)
)

const ln2Squared = math.Ln2 * math.Ln2

// EstimateParameters returns the bit array size and the number of hash rounds
// for a filter holding capacity elements at the given false positive rate:
//
//	bitArraySize = ceil(-capacity * ln(p) / ln(2)^2)
//	hashFuncNum  = round(bitArraySize / capacity * ln(2))
//
// Both results are at least 1.
func EstimateParameters(falsePositiveRate float64, capacity uint64) (bitArraySize uint64, hashFuncNum uint64, err error) {
	// Written as a negated range check so NaN is rejected too.
	if !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return 0, 0, fmt.Errorf("%w: false positive rate %v not in (0, 1)", ErrInvalidParameter, falsePositiveRate)
	}
	if capacity == 0 {
		return 0, 0, fmt.Errorf("%w: capacity must be positive", ErrInvalidParameter)
	}

	size := math.Ceil(-(float64(capacity) * math.Log(falsePositiveRate)) / ln2Squared)
	if size >= math.MaxUint64 {
		return 0, 0, fmt.Errorf("%w: bit array size overflows", ErrInvalidParameter)
	}
	bitArraySize = uint64(size)
	if bitArraySize == 0 {
		bitArraySize = 1
	}

	factor := float64(bitArraySize) / float64(capacity)
	hashFuncNum = uint64(math.Round(factor * math.Ln2))
	if hashFuncNum == 0 {
		hashFuncNum = 1
	}

	return bitArraySize, hashFuncNum, nil
}

// estimateOrdinalParameters is EstimateParameters with the additional cap on
// rounds imposed by the uint8 cells of an OrdinalFilter.
func estimateOrdinalParameters(falsePositiveRate float64, capacity uint64) (uint64, uint64, error) {
	bitArraySize, hashFuncNum, err := EstimateParameters(falsePositiveRate, capacity)
	if err != nil {
		return 0, 0, err
	}
	if hashFuncNum > MaxOrdinalRounds {
		return 0, 0, fmt.Errorf("%w: got %d rounds", ErrTooManyRounds, hashFuncNum)
	}
	return bitArraySize, hashFuncNum, nil
}
