package bloom

import (
	"fmt"
	"math"
)

const (
	// MaxInverseError is the largest inverse error rate the dump header can
	// carry (it is read back as a signed 16-bit value by other readers).
	MaxInverseError = math.MaxInt16

	// MinErrorPrecision is the exclusive lower bound for an error rate.
	MinErrorPrecision = 1.0 / float64(MaxInverseError)

	DefaultCapacity  = 100000
	DefaultErrorRate = 0.005
)

var ln2 = math.Log(2)

// Params holds the layout derived from (capacity, errorRate).
type Params struct {
	Bits   int
	Bytes  int
	Hashes int
}

// BitCount returns the size of the bit array: int(-n*ln(p)/ln(2)^2) + 1.
func BitCount(capacity int, errorRate float64) int {
	return int(-float64(capacity)*math.Log(errorRate)/(ln2*ln2)) + 1
}

// ByteCount returns ceil(BitCount/8).
func ByteCount(capacity int, errorRate float64) int {
	bits := BitCount(capacity, errorRate)
	n := bits / 8
	if bits%8 != 0 {
		n++
	}
	return n
}

// HashRounds returns int(BitCount*ln(2)/capacity) + 1.
func HashRounds(capacity int, errorRate float64) int {
	return hashRounds(capacity, BitCount(capacity, errorRate))
}

func hashRounds(capacity, bits int) int {
	return int(float64(bits)*ln2/float64(capacity)) + 1
}

// ValidateParams checks that capacity and errorRate describe a filter that
// can be built and dumped.
func ValidateParams(capacity int, errorRate float64) error {
	if capacity < 1 || capacity > math.MaxInt32 {
		return fmt.Errorf("%w: capacity %d out of range [1, %d]", ErrInvalidParameter, capacity, math.MaxInt32)
	}
	if math.IsNaN(errorRate) || errorRate >= 1.0 || errorRate <= MinErrorPrecision {
		return fmt.Errorf("%w: error rate %v out of range (%v, 1)", ErrInvalidParameter, errorRate, MinErrorPrecision)
	}
	// Computed in float so an oversized result can't wrap before the check.
	if bits := -float64(capacity)*math.Log(errorRate)/(ln2*ln2) + 1; bits > math.MaxInt32 {
		return fmt.Errorf("%w: %d keys at error rate %v need too many bits", ErrInvalidParameter, capacity, errorRate)
	}
	return nil
}

// Derive validates the pair and returns the derived layout.
func Derive(capacity int, errorRate float64) (Params, error) {
	if err := ValidateParams(capacity, errorRate); err != nil {
		return Params{}, err
	}
	bits := BitCount(capacity, errorRate)
	return Params{
		Bits:   bits,
		Bytes:  ByteCount(capacity, errorRate),
		Hashes: hashRounds(capacity, bits),
	}, nil
}

// HeaderErrorRate is the error rate a dump of a filter built with errorRate
// reads back as: 1/int(1/errorRate).
func HeaderErrorRate(errorRate float64) float64 {
	return 1.0 / float64(inverseError(errorRate))
}

// CheckReloadable reports whether a filter built from (capacity, errorRate)
// can be loaded again from its own dump with the same layout. Only the
// truncated inverse error rate is stored, so rates that are not 1/n may
// reload with a different layout.
func CheckReloadable(capacity int, errorRate float64) error {
	if err := ValidateParams(capacity, errorRate); err != nil {
		return err
	}
	stored := HeaderErrorRate(errorRate)
	p, err := Derive(capacity, stored)
	if err != nil {
		return fmt.Errorf("%w: %v reads back as %v: %v", ErrNotReloadable, errorRate, stored, err)
	}
	// Any change in bit count moves every key's positions, so the whole
	// layout must match, not only the byte length.
	want, _ := Derive(capacity, errorRate)
	if p != want {
		return fmt.Errorf("%w: %v reads back as %v (%d bits instead of %d)", ErrNotReloadable, errorRate, stored, p.Bits, want.Bits)
	}
	return nil
}
