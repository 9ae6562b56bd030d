/*
Package bloom implements a Bloom filter whose serialized form is shared with
independent Python and Java readers, so the layout is fixed to the bit:

	bits   = int(-n*ln(p)/ln(2)^2) + 1
	bytes  = ceil(bits/8)
	hashes = int(bits*ln(2)/n) + 1

Bit positions come from two MurmurHash3 x86_32 rounds over the key's bytes,
a = murmur3(key, 42) and b = murmur3(key, a), combined as (a + i*b) mod bits
in 32-bit arithmetic. Bit j lives in byte j>>3 under mask 1<<(j%8).

A dump is a 9-byte little-endian header followed by the payload:

	+--------+------+------------+----------+-----------------+
	| crc16  | gzip | 1/err      | capacity | payload ...     |
	| uint16 | u8   | uint16     | int32    |                 |
	+--------+------+------------+----------+-----------------+

crc16 is the IEEE CRC-32 of the payload folded as (crc & 0xFFFF) ^ (crc >> 16).
The payload is the bit array, gzip compressed when the flag is 1. Since only
int(1/err) is stored, the error rate read back is 1/int(1/err).
*/
package bloom
