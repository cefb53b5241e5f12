/*
NAME
  chunk.go - generic tag-prefixed, length-prefixed chunk framing used at
  every nesting level of a SMAF file.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "encoding/binary"

// chunkHeaderSize is the size, in bytes, of a chunk's tag+length header.
const chunkHeaderSize = 4 + 4

// rawChunk is one tag-prefixed, length-prefixed unit: the four-byte ASCII
// tag, and a payload slice of exactly the declared length.
type rawChunk struct {
	tag     [4]byte
	payload []byte
}

// nextChunk consumes one chunk from the front of data, returning it and the
// remainder. It fails if the header cannot be read in full or if the
// declared length exceeds the remaining bytes.
func nextChunk(data []byte, offset int) (chunk rawChunk, rest []byte, newOffset int, err error) {
	if len(data) < chunkHeaderSize {
		return rawChunk{}, nil, offset, newParseError(offset, "truncated chunk header")
	}
	var tag [4]byte
	copy(tag[:], data[:4])
	length := binary.BigEndian.Uint32(data[4:8])
	if uint64(length) > uint64(len(data)-chunkHeaderSize) {
		return rawChunk{}, nil, offset, newParseError(offset, "chunk %q declares length %d exceeding remaining %d bytes", tag, length, len(data)-chunkHeaderSize)
	}
	payload := data[chunkHeaderSize : chunkHeaderSize+int(length)]
	return rawChunk{tag: tag, payload: payload}, data[chunkHeaderSize+int(length):], offset + chunkHeaderSize + int(length), nil
}

// readChunks consumes chunks from data until it is exhausted, calling fn for
// each one. This is the "all_consuming" iteration used for the top-level
// stream and for every inner-chunk sequence (Score Track body, Mtsp
// wave-data list, PCM Audio Track body).
func readChunks(data []byte, offset int, fn func(chunk rawChunk, offset int) error) error {
	for len(data) > 0 {
		chunk, rest, newOffset, err := nextChunk(data, offset)
		if err != nil {
			return err
		}
		if err := fn(chunk, offset); err != nil {
			return err
		}
		data, offset = rest, newOffset
	}
	return nil
}
