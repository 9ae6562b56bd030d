package bloom

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Dump serializes the filter: a 9-byte header followed by the bit array,
// gzip compressed when compress is set.
func (f *Filter) Dump(compress bool) ([]byte, error) {
	payload := f.bits
	var gz uint8
	if compress {
		zipped, err := gzipBytes(f.bits)
		if err != nil {
			return nil, fmt.Errorf("failed to compress filter: %w", err)
		}
		payload = zipped
		gz = 1
	}

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(payload)))
	h := header{
		Checksum:     checksum(payload),
		Gzipped:      gz,
		InverseError: inverseError(f.errorRate),
		Capacity:     int32(f.capacity),
	}
	if err := writeHeader(buf, h); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// DumpToBase64 is Dump encoded with the standard, padded base64 alphabet.
func (f *Filter) DumpToBase64(compress bool) ([]byte, error) {
	dump, err := f.Dump(compress)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(dump)))
	base64.StdEncoding.Encode(out, dump)
	return out, nil
}

// Load rebuilds a filter from a Dump. The checksum is verified before the
// payload is decompressed.
func Load(dump []byte) (*Filter, error) {
	h, payload, err := splitDump(dump)
	if err != nil {
		return nil, err
	}
	if h.Gzipped > 1 {
		return nil, fmt.Errorf("%w: invalid gzip flag %d", ErrDecode, h.Gzipped)
	}
	if sum := checksum(payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: header %#04x, payload %#04x", ErrChecksum, h.Checksum, sum)
	}

	capacity := int(h.Capacity)
	errorRate := 1.0 / float64(h.InverseError)
	p, err := Derive(capacity, errorRate)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrDecode, err)
	}

	if h.Gzipped == 1 {
		payload, err = gunzipBytes(payload, p.Bytes)
		if err != nil {
			return nil, err
		}
	}
	return FromBytes(payload, capacity, errorRate)
}

// LoadFromBase64 decodes a base64 dump and loads it. The URL-safe alphabet
// is accepted as a fallback.
func LoadFromBase64(dump []byte) (*Filter, error) {
	dump = bytes.TrimSpace(dump)
	decoded, err := decodeBase64(base64.StdEncoding, dump)
	if err != nil {
		var urlErr error
		decoded, urlErr = decodeBase64(base64.URLEncoding, dump)
		if urlErr != nil {
			return nil, fmt.Errorf("%w: base64: %v", ErrDecode, err)
		}
	}
	return Load(decoded)
}

func decodeBase64(enc *base64.Encoding, src []byte) ([]byte, error) {
	out := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(out, src)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// gunzipBytes inflates data, which must expand to exactly size bytes.
func gunzipBytes(data []byte, size int) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", ErrDecode, err)
	}
	defer zr.Close()

	// The buffer grows with the inflated data; a tiny payload claiming a
	// huge capacity fails before the full size is allocated.
	var out bytes.Buffer
	n, err := io.Copy(&out, io.LimitReader(zr, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", ErrDecode, err)
	}
	if n != int64(size) {
		return nil, fmt.Errorf("%w: decompressed %d bytes, expected %d", ErrDecode, n, size)
	}
	return out.Bytes(), nil
}
