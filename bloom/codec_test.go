package bloom_test

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"cross-bloomfilter/bloom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPopulated(t *testing.T, capacity int, errorRate float64, n int) *bloom.Filter {
	t.Helper()
	f, err := bloom.New(capacity, errorRate)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		f.Add(fmt.Sprintf("linkPost:%d", 1005054+i))
	}
	return f
}

func TestDumpGolden(t *testing.T) {
	f, err := bloom.New(10, 0.1)
	require.NoError(t, err)
	f.Add("hello")
	f.Add("world")

	dump, err := f.Dump(false)
	require.NoError(t, err)
	assert.Equal(t, "511e000a000a000000124801a00004", hex.EncodeToString(dump))

	b64, err := f.DumpToBase64(false)
	require.NoError(t, err)
	assert.Equal(t, "UR4ACgAKAAAAEkgBoAAE", string(b64))
}

func TestDumpHeader(t *testing.T) {
	f := newPopulated(t, 100000, 0.005, 1000)

	for _, compress := range []bool{false, true} {
		dump, err := f.Dump(compress)
		require.NoError(t, err)
		require.Greater(t, len(dump), bloom.HeaderSize)

		if compress {
			assert.Equal(t, byte(1), dump[2])
			assert.Less(t, len(dump), bloom.HeaderSize+f.ByteCount())
		} else {
			assert.Equal(t, byte(0), dump[2])
			assert.Len(t, dump, bloom.HeaderSize+f.ByteCount())
			assert.Equal(t, f.Bytes(), dump[bloom.HeaderSize:])
		}
		// inverse error rate 200, capacity 100000, little-endian
		assert.Equal(t, []byte{200, 0}, dump[3:5])
		assert.Equal(t, []byte{0xa0, 0x86, 0x01, 0x00}, dump[5:9])
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		errorRate float64
		keys      int
	}{
		{"empty", 1000, 0.01, 0},
		{"sparse", 100000, 0.005, 100},
		{"full", 1000, 0.001, 1000},
		{"overfull", 100, 0.1, 5000},
	}

	for _, tt := range tests {
		for _, compress := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/compress=%v", tt.name, compress), func(t *testing.T) {
				f := newPopulated(t, tt.capacity, tt.errorRate, tt.keys)

				dump, err := f.Dump(compress)
				require.NoError(t, err)
				loaded, err := bloom.Load(dump)
				require.NoError(t, err)
				assert.True(t, loaded.Equal(f), "binary round trip")

				b64, err := f.DumpToBase64(compress)
				require.NoError(t, err)
				loaded, err = bloom.LoadFromBase64(b64)
				require.NoError(t, err)
				assert.True(t, loaded.Equal(f), "base64 round trip")

				for i := 0; i < tt.keys; i++ {
					assert.True(t, loaded.Contains(fmt.Sprintf("linkPost:%d", 1005054+i)))
				}
			})
		}
	}
}

func TestLoadChecksumSensitivity(t *testing.T) {
	f := newPopulated(t, 200, 0.01, 50)

	for _, compress := range []bool{false, true} {
		dump, err := f.Dump(compress)
		require.NoError(t, err)

		for i := bloom.HeaderSize; i < len(dump); i++ {
			corrupt := append([]byte(nil), dump...)
			corrupt[i] ^= 0x01
			_, err := bloom.Load(corrupt)
			require.ErrorIs(t, err, bloom.ErrChecksum, "compress=%v offset=%d", compress, i)
		}

		corrupt := append([]byte(nil), dump...)
		corrupt[0] ^= 0xff
		_, err = bloom.Load(corrupt)
		assert.ErrorIs(t, err, bloom.ErrChecksum)
	}
}

func TestLoadShortHeader(t *testing.T) {
	for _, n := range []int{0, 1, 8} {
		_, err := bloom.Load(make([]byte, n))
		assert.ErrorIs(t, err, bloom.ErrShortHeader)
		assert.ErrorIs(t, err, bloom.ErrDecode)
	}
}

func TestLoadTruncatedPayload(t *testing.T) {
	f := newPopulated(t, 100, 0.01, 10)
	dump, err := f.Dump(false)
	require.NoError(t, err)

	// Truncation changes the checksum first.
	_, err = bloom.Load(dump[:len(dump)-1])
	assert.ErrorIs(t, err, bloom.ErrChecksum)
}

func TestLoadFromBase64(t *testing.T) {
	f := newPopulated(t, 1000, 0.01, 500)
	dump, err := f.Dump(true)
	require.NoError(t, err)

	t.Run("url-safe alphabet", func(t *testing.T) {
		enc := base64.URLEncoding.EncodeToString(dump)
		require.True(t, strings.ContainsAny(enc, "-_"))
		loaded, err := bloom.LoadFromBase64([]byte(enc))
		require.NoError(t, err)
		assert.True(t, loaded.Equal(f))
	})

	t.Run("trailing newline", func(t *testing.T) {
		enc := base64.StdEncoding.EncodeToString(dump) + "\n"
		loaded, err := bloom.LoadFromBase64([]byte(enc))
		require.NoError(t, err)
		assert.True(t, loaded.Equal(f))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := bloom.LoadFromBase64([]byte("not*base64!"))
		assert.ErrorIs(t, err, bloom.ErrDecode)
	})

	t.Run("corrupted dump", func(t *testing.T) {
		corrupt := append([]byte(nil), dump...)
		corrupt[len(corrupt)-1] ^= 0x80
		_, err := bloom.LoadFromBase64([]byte(base64.StdEncoding.EncodeToString(corrupt)))
		assert.ErrorIs(t, err, bloom.ErrChecksum)
	})
}
