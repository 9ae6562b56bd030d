package bloom

import (
	"fmt"
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
)

func TestMurmur3Vectors(t *testing.T) {
	tests := []struct {
		data string
		seed uint32
		want uint32
	}{
		{"", 0, 0},
		{"", 1, 0x514e28b7},
		{"", 0xffffffff, 0x81f16f39},
		{"\x00\x00\x00\x00", 0, 0x2362f9de},
		{"aaaa", 0x9747b28c, 0x5a97808a},
		{"abc", 0, 0xb3dd93fa},
		{"Hello, world!", 0x9747b28c, 0x24884cba},
		{"The quick brown fox jumps over the lazy dog", 0x9747b28c, 0x2fa826cd},
		{"linkPost:1005054", HashSeed, 0x564d7c55},
		{"hello", HashSeed, 0xe2dbd2e1},
		{"hello", 0xe2dbd2e1, 0x8da5668e},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%#x", tt.data, tt.seed), func(t *testing.T) {
			assert.Equal(t, tt.want, murmur3Sum32([]byte(tt.data), tt.seed))
		})
	}
}

func TestMurmur3MatchesLibrary(t *testing.T) {
	seeds := []uint32{0, 1, HashSeed, 0x9747b28c, 0xffffffff}
	for n := 0; n < 64; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*31 + n)
		}
		for _, seed := range seeds {
			h := murmur3.New32WithSeed(seed)
			h.Write(data)
			assert.Equal(t, h.Sum32(), murmur3Sum32(data, seed), "len=%d seed=%#x", n, seed)
		}
	}
}
