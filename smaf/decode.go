/*
NAME
  decode.go - top-level SMAF file decoding: the MMMD container, its
  top-level chunk stream, and the trailing CRC.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package smaf decodes the SMAF (Synthetic music Mobile Application Format)
// ringtone container into a typed, read-only tree of chunks, tracks, and
// sequence events.
//
// Decode retains references into the byte slice passed to it for opaque
// payloads (Setup Data, Optional Data, wave sample bytes and the like): the
// caller must keep that slice alive for as long as the returned *File is in
// use.
package smaf

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

const (
	magic         = "MMMD"
	magicSize     = 4
	lengthSize    = 4
	crcSize       = 2
	headerSize    = magicSize + lengthSize
)

// ChunkKind discriminates the payload carried by a top-level Chunk.
type ChunkKind uint8

const (
	ChunkContentsInfo ChunkKind = iota
	ChunkOptionalData
	ChunkScoreTrack
	ChunkPcmAudioTrack
)

// Chunk is one top-level chunk of the file. Exactly one of the typed
// fields is meaningful, selected by Kind.
type Chunk struct {
	Kind ChunkKind

	ContentsInfo  *ContentsInfo
	OptionalData  *OptionalData
	ScoreTrack    *ScoreTrack
	PcmAudioTrack *PcmAudioTrack
}

// File is the decoded tree of a whole .mmf byte stream: its top-level
// chunks and the (unverified) trailing CRC.
type File struct {
	Chunks []Chunk
	CRC    uint16
}

// ScoreTracks returns the file's Score Track chunks in declaration order.
func (f *File) ScoreTracks() []*ScoreTrack {
	var out []*ScoreTrack
	for _, c := range f.Chunks {
		if c.Kind == ChunkScoreTrack {
			out = append(out, c.ScoreTrack)
		}
	}
	return out
}

// PcmAudioTracks returns the file's PCM Audio Track chunks in declaration
// order.
func (f *File) PcmAudioTracks() []*PcmAudioTrack {
	var out []*PcmAudioTrack
	for _, c := range f.Chunks {
		if c.Kind == ChunkPcmAudioTrack {
			out = append(out, c.PcmAudioTrack)
		}
	}
	return out
}

// Decode parses a complete SMAF byte stream: the MMMD magic, its declared
// length, the chunk sequence, and the trailing CRC. The returned *File
// borrows sub-slices of data; data must outlive it.
//
// Decode fails on any malformed structure: a bad
// magic, a length field inconsistent with the remaining bytes, an
// unrecognized chunk tag, residue left over inside a chunk of known kind,
// or any of the fatal conditions spec.md enumerates (bad timebase byte, bad
// sampling-frequency index, unsupported format_type, unsupported sequence
// status byte). Failures outside a track are returned as a *ParseError;
// failures inside a Score Track or PCM Audio Track are that *ParseError
// wrapped by errors.Wrapf with the track's tag, recoverable with
// errors.Cause.
func Decode(data []byte, opts ...Option) (*File, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) < headerSize {
		return nil, newParseError(0, "truncated file header")
	}
	if string(data[:magicSize]) != magic {
		return nil, newParseError(0, "bad magic %q, want %q", data[:magicSize], magic)
	}
	length := binary.BigEndian.Uint32(data[magicSize : magicSize+lengthSize])
	body := data[headerSize:]
	if uint64(length) != uint64(len(body)) {
		return nil, newParseError(headerSize, "declared length %d does not match remaining %d bytes", length, len(body))
	}
	if len(body) < crcSize {
		return nil, newParseError(headerSize, "truncated CRC trailer")
	}

	chunkBytes := body[:len(body)-crcSize]
	crc := binary.BigEndian.Uint16(body[len(body)-crcSize:])

	file := &File{CRC: crc}
	offset := headerSize
	err := readChunks(chunkBytes, offset, func(chunk rawChunk, chunkOffset int) error {
		c, err := decodeTopLevelChunk(chunk, chunkOffset, cfg.log)
		if err != nil {
			return err
		}
		file.Chunks = append(file.Chunks, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return file, nil
}

func decodeTopLevelChunk(chunk rawChunk, offset int, log logging.Logger) (Chunk, error) {
	payloadOffset := offset + chunkHeaderSize
	switch {
	case chunk.tag == [4]byte{'C', 'N', 'T', 'I'}:
		info, err := decodeContentsInfo(chunk.payload, payloadOffset)
		if err != nil {
			return Chunk{}, err
		}
		return Chunk{Kind: ChunkContentsInfo, ContentsInfo: info}, nil

	case chunk.tag == [4]byte{'O', 'P', 'D', 'A'}:
		return Chunk{Kind: ChunkOptionalData, OptionalData: decodeOptionalData(chunk.payload)}, nil

	case chunk.tag[0] == 'M' && chunk.tag[1] == 'T' && chunk.tag[2] == 'R':
		id := chunk.tag[3]
		track, err := decodeScoreTrack(id, chunk.payload, payloadOffset, log)
		if err != nil {
			return Chunk{}, errors.Wrapf(err, "decoding score track MTR%02X", id)
		}
		return Chunk{Kind: ChunkScoreTrack, ScoreTrack: track}, nil

	case chunk.tag[0] == 'A' && chunk.tag[1] == 'T' && chunk.tag[2] == 'R':
		id := chunk.tag[3]
		track, err := decodePcmAudioTrack(id, chunk.payload, payloadOffset, log)
		if err != nil {
			return Chunk{}, errors.Wrapf(err, "decoding PCM audio track ATR%02X", id)
		}
		return Chunk{Kind: ChunkPcmAudioTrack, PcmAudioTrack: track}, nil

	default:
		return Chunk{}, newParseError(offset, "unrecognized top-level chunk tag %q", chunk.tag)
	}
}
