package bloom

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() int {
	words := make([]uint64, (len(f.bits)+7)/8)
	for i, b := range f.bits {
		words[i/8] |= uint64(b) << (8 * (i % 8))
	}
	set := bitset.From(words)
	// Padding bits past BitCount are never addressed.
	for i := uint(f.params.Bits); i < uint(len(f.bits)*8); i++ {
		set.Clear(i)
	}
	return int(set.Count())
}

// FillRatio is the fraction of the bit array that is set.
func (f *Filter) FillRatio() float64 {
	return float64(f.SetBits()) / float64(f.params.Bits)
}

// ApproxCount estimates how many distinct keys have been added:
//
//	-m * ln(1 - X/m) / k
//
// where X is the number of set bits. A saturated filter reports math.MaxInt.
func (f *Filter) ApproxCount() int {
	m := float64(f.params.Bits)
	on := float64(f.SetBits())
	if on >= m {
		return math.MaxInt
	}
	return int(-m * math.Log(1.0-on/m) / float64(f.params.Hashes))
}
