package bloom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// HeaderSize is the size of the fixed dump header.
const HeaderSize = 9

// header is the little-endian dump prefix. Field order is the wire order;
// binary.Read/Write pack it without padding.
type header struct {
	Checksum     uint16
	Gzipped      uint8
	InverseError uint16
	Capacity     int32
}

func writeHeader(w io.Writer, h header) error {
	return binary.Write(w, binary.LittleEndian, h)
}

func readHeader(r io.Reader) (header, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return header{}, err
	}
	return h, nil
}

// splitDump separates the header from the payload.
func splitDump(dump []byte) (header, []byte, error) {
	if len(dump) < HeaderSize {
		return header{}, nil, fmt.Errorf("%w: got %d bytes", ErrShortHeader, len(dump))
	}
	h, err := readHeader(bytes.NewReader(dump[:HeaderSize]))
	if err != nil {
		return header{}, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return h, dump[HeaderSize:], nil
}

// checksum folds the IEEE CRC-32 of data into 16 bits.
func checksum(data []byte) uint16 {
	crc := crc32.ChecksumIEEE(data)
	return uint16((crc & 0xFFFF) ^ (crc >> 16))
}

// inverseError is the header representation of an error rate. The float to
// int conversion truncates, as other readers of this format do.
func inverseError(errorRate float64) uint16 {
	return uint16(1.0 / errorRate)
}
