/*
NAME
  timebase.go - tick-to-millisecond scale factor decoding.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// timebaseTable maps the 8 valid timebase byte values to milliseconds per
// tick. Any value outside this table is a fatal parse failure; there is no
// fallback.
var timebaseTable = map[uint8]uint32{
	0x00: 1,
	0x01: 2,
	0x02: 4,
	0x03: 5,
	0x10: 10,
	0x11: 20,
	0x12: 40,
	0x13: 50,
}

// DecodeTimebase resolves a timebase byte (timebase_d or timebase_g) to its
// milliseconds-per-tick value. It is a bijection onto {1,2,4,5,10,20,40,50}.
func DecodeTimebase(offset int, b uint8) (uint32, error) {
	ms, ok := timebaseTable[b]
	if !ok {
		return 0, newParseError(offset, "invalid timebase byte 0x%02X", b)
	}
	return ms, nil
}
