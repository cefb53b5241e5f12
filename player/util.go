/*
NAME
  util.go - small shared helpers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import "encoding/binary"

// bytesToInt16LE reinterprets little-endian PCM bytes (as produced by
// codec/adpcmb) as signed 16-bit samples.
func bytesToInt16LE(b []byte) []int16 {
	samples := make([]int16, len(b)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b[2*i : 2*i+2]))
	}
	return samples
}
