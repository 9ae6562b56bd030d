package bloom

import (
	"bytes"
	"fmt"
)

// HashSeed seeds the first murmur3 round; the second round is seeded with
// the first round's result.
const HashSeed = 42

// Filter is a Bloom filter whose layout is fully determined by its capacity
// and error rate. It is not safe for concurrent Add calls.
type Filter struct {
	capacity  int
	errorRate float64
	params    Params
	bits      []byte
}

// New returns an empty filter sized for capacity keys at errorRate.
func New(capacity int, errorRate float64) (*Filter, error) {
	p, err := Derive(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	return &Filter{
		capacity:  capacity,
		errorRate: errorRate,
		params:    p,
		bits:      make([]byte, p.Bytes),
	}, nil
}

// FromBytes rebuilds a filter from its bit array. data must be exactly
// ByteCount(capacity, errorRate) long; it is copied.
func FromBytes(data []byte, capacity int, errorRate float64) (*Filter, error) {
	p, err := Derive(capacity, errorRate)
	if err != nil {
		return nil, err
	}
	if len(data) != p.Bytes {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrLengthMismatch, p.Bytes, len(data))
	}
	bits := make([]byte, p.Bytes)
	copy(bits, data)
	return &Filter{
		capacity:  capacity,
		errorRate: errorRate,
		params:    p,
		bits:      bits,
	}, nil
}

// Contains reports whether key may have been added. false is definite.
func (f *Filter) Contains(key string) bool {
	return f.checkAdd(key, false)
}

// Add inserts key and reports whether every one of its bits was already
// set, i.e. whether the key appeared to be present before the call.
func (f *Filter) Add(key string) bool {
	return f.checkAdd(key, true)
}

// AddAll adds every key and returns how many of them were not already
// present.
func (f *Filter) AddAll(keys ...string) int {
	added := 0
	for _, key := range keys {
		if !f.Add(key) {
			added++
		}
	}
	return added
}

func (f *Filter) checkAdd(key string, add bool) bool {
	data := []byte(key)
	a := murmur3Sum32(data, HashSeed)
	b := murmur3Sum32(data, a)

	m := uint32(f.params.Bits)
	hits := 0
	for i := 0; i < f.params.Hashes; i++ {
		pos := (a + uint32(i)*b) % m
		idx := pos >> 3
		mask := byte(1) << (pos % 8)

		if f.bits[idx]&mask != 0 {
			hits++
		} else if add {
			f.bits[idx] |= mask
		}
	}
	return hits == f.params.Hashes
}

func (f *Filter) Capacity() int { return f.capacity }
func (f *Filter) ErrorRate() float64 { return f.errorRate }
func (f *Filter) BitCount() int { return f.params.Bits }
func (f *Filter) ByteCount() int { return f.params.Bytes }
func (f *Filter) HashRounds() int { return f.params.Hashes }
func (f *Filter) Params() Params { return f.params }

// Bytes returns a copy of the bit array.
func (f *Filter) Bytes() []byte {
	out := make([]byte, len(f.bits))
	copy(out, f.bits)
	return out
}

// Equal reports whether both filters have the same parameters and
// identical bit arrays.
func (f *Filter) Equal(other *Filter) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.capacity == other.capacity &&
		f.errorRate == other.errorRate &&
		f.params == other.params &&
		bytes.Equal(f.bits, other.bits)
}

func (f *Filter) String() string {
	return fmt.Sprintf("bloom.Filter{capacity=%d errorRate=%v bits=%d bytes=%d hashes=%d}",
		f.capacity, f.errorRate, f.params.Bits, f.params.Bytes, f.params.Hashes)
}
