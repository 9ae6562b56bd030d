package bloom

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("bloom: invalid parameter")
	ErrChecksum         = errors.New("bloom: bad checksum")
	ErrDecode           = errors.New("bloom: decode failed")
)

var (
	ErrLengthMismatch    = fmt.Errorf("%w: data length does not match derived byte count", ErrInvalidParameter)
	ErrCapacityMismatch  = fmt.Errorf("%w: capacities must be equal", ErrInvalidParameter)
	ErrErrorRateMismatch = fmt.Errorf("%w: error rates must be equal", ErrInvalidParameter)
	ErrNotReloadable     = fmt.Errorf("%w: error rate does not survive the dump header", ErrInvalidParameter)

	ErrShortHeader = fmt.Errorf("%w: dump shorter than header", ErrDecode)
)
