package bloom

import "fmt"

// Union returns a new filter holding the bitwise OR of f and other. Both
// must share capacity and error rate exactly. Neither operand is modified.
func (f *Filter) Union(other *Filter) (*Filter, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil filter", ErrInvalidParameter)
	}
	if f.capacity != other.capacity {
		return nil, fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, f.capacity, other.capacity)
	}
	if f.errorRate != other.errorRate {
		return nil, fmt.Errorf("%w: %v != %v", ErrErrorRateMismatch, f.errorRate, other.errorRate)
	}
	if len(f.bits) != len(other.bits) {
		return nil, fmt.Errorf("%w: %d != %d bytes", ErrLengthMismatch, len(f.bits), len(other.bits))
	}

	merged := make([]byte, len(f.bits))
	for i := range merged {
		merged[i] = f.bits[i] | other.bits[i]
	}
	return FromBytes(merged, f.capacity, f.errorRate)
}
