/*
NAME
  adpcmb.go - Yamaha ADPCM-B decoding to signed 16-bit PCM.

DESCRIPTION
  ADPCM-B is the stateful, 4-bit-per-sample codec used by SMAF's
  YamahaADPCM stream wave format and ADPCM PCM Audio Track format. It is a
  distinct state machine from the IMA ADPCM implemented in codec/adpcm: the
  step-size update multiplies by a fixed per-nibble table rather than
  indexing into a step table, and saturates to a wider [127, 24576] range.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package adpcmb decodes Yamaha ADPCM-B to signed 16-bit PCM.
package adpcmb

import (
	"bytes"
	"encoding/binary"
	"io"
)

// stepTable is indexed by the nibble's 3 magnitude bits (delta) and scales
// the running step size on every sample.
var stepTable = [8]uint16{57, 57, 57, 57, 77, 102, 128, 153}

const (
	initialStepSize uint16 = 127
	minStepSize      uint16 = 127
	maxStepSize      uint16 = 24576
)

// Decoder holds the ADPCM-B state (history and step size) carried across a
// stream of nibbles. The zero value is not ready to use: NewDecoder sets the
// output writer and the initial state (history=0, step_size=127).
type Decoder struct {
	dst     io.Writer
	history int16
	step    uint16
}

// NewDecoder returns a new ADPCM-B Decoder that writes signed 16-bit PCM
// samples (little-endian) to dst.
func NewDecoder(dst io.Writer) *Decoder {
	return &Decoder{dst: dst, step: initialStepSize}
}

// Write decodes src, two samples per byte (high nibble first, then low
// nibble), writing little-endian int16 PCM samples to the Decoder's dst.
func (d *Decoder) Write(src []byte) (int, error) {
	var n int
	buf := make([]byte, 2)
	for _, b := range src {
		for _, nibble := range [2]byte{b >> 4, b & 0x0F} {
			sample := d.decodeNibble(nibble)
			binary.LittleEndian.PutUint16(buf, uint16(sample))
			wn, err := d.dst.Write(buf)
			n += wn
			if err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

// decodeNibble advances the decoder by one ADPCM-B nibble and returns the
// resulting PCM sample.
func (d *Decoder) decodeNibble(nibble byte) int16 {
	sign := nibble & 0x08
	delta := nibble & 0x07

	diff := int32((1+(int32(delta)<<1))*int32(d.step)) >> 3
	if sign != 0 {
		diff = -diff
	}
	d.history = saturate16(int32(d.history) + diff)

	step := int32(stepTable[delta]) * int32(d.step) >> 6
	d.step = clampStep(uint32(step))

	return d.history
}

func saturate16(v int32) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}

func clampStep(v uint32) uint16 {
	switch {
	case v < uint32(minStepSize):
		return minStepSize
	case v > uint32(maxStepSize):
		return maxStepSize
	default:
		return uint16(v)
	}
}

// Decode is a convenience wrapper that decodes src in one call, returning
// the little-endian int16 PCM samples as raw bytes (2*len(src) samples).
func Decode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(src) * 4)
	d := NewDecoder(&buf)
	if _, err := d.Write(src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
