/*
NAME
  varint.go - the MIDI-style base-128 variable-length integer encoding used
  for durations, gate times, and exclusive-message lengths.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// maxVarIntBytes bounds the width of a variable-length integer; the format
// has no practical use for values requiring more than 5 base-128 bytes
// (35 bits of payload, covering the 32-bit values spec.md describes).
const maxVarIntBytes = 5

// ReadVarInt decodes a big-endian base-128 variable-length integer from the
// front of data: each byte contributes its low 7 bits, and the high bit set
// means "more bytes follow". It returns the decoded value and the remaining
// bytes after the encoding.
func ReadVarInt(data []byte, offset int) (value uint32, rest []byte, newOffset int, err error) {
	var n int
	for n < len(data) && n < maxVarIntBytes {
		b := data[n]
		value = (value << 7) | uint32(b&0x7F)
		n++
		if b&0x80 == 0 {
			return value, data[n:], offset + n, nil
		}
	}
	if n >= maxVarIntBytes {
		return 0, nil, offset, newParseError(offset, "variable-length integer exceeds %d bytes", maxVarIntBytes)
	}
	return 0, nil, offset, newParseError(offset, "truncated variable-length integer")
}

// EncodeVarInt appends the base-128 encoding of v to dst, for use by tests
// exercising the round-trip property.
func EncodeVarInt(dst []byte, v uint32) []byte {
	var stack [5]byte
	n := 0
	stack[n] = byte(v & 0x7F)
	n++
	v >>= 7
	for v > 0 {
		stack[n] = byte(v&0x7F) | 0x80
		n++
		v >>= 7
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, stack[i])
	}
	return dst
}
