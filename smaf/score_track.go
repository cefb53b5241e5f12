/*
NAME
  score_track.go - the MTR{x} (Score Track) top-level chunk and its inner
  chunks: Setup Data, Sequence Data, PCM Data, Seek/Phrase Info.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "github.com/ausocean/utils/logging"

// WaveData is one Mwa{n} chunk inside a Score Track's Mtsp (PCM Data)
// chunk: the encoded sample payload for wave identifier ID.
type WaveData struct {
	ID           uint8
	Channel      Channel
	Format       StreamWaveFormat
	BaseBit      BaseBit
	SamplingFreq uint16
	Data         []byte
}

func decodeWaveData(id uint8, data []byte, offset int) (*WaveData, error) {
	if len(data) < 3 {
		return nil, newParseError(offset, "Mwa%02X chunk too short: %d bytes", id, len(data))
	}
	waveType := data[0]
	samplingFreq := uint16(data[1])<<8 | uint16(data[2])
	return &WaveData{
		ID:           id,
		Channel:      Channel((waveType >> 7) & 0x01),
		Format:       StreamWaveFormat((waveType >> 4) & 0x07),
		BaseBit:      BaseBit(waveType & 0x0F),
		SamplingFreq: samplingFreq,
		Data:         data[3:],
	}, nil
}

// ScoreTrack is the decoded MTR{x} chunk: format selection, timebases, the
// channel-status table, and its ordered inner chunks.
type ScoreTrack struct {
	ID            uint8
	FormatType    FormatType
	SequenceType  uint8
	TimebaseD     uint32 // ms per tick, for event deltas
	TimebaseG     uint32 // ms per tick, for note gate-times
	ChannelStatus []ChannelStatus
	SetupData     []byte // Mtsu, nil if absent
	Sequence      *Sequence
	Wave          []*WaveData // Mtsp entries, by declaration order
	SeekInfo      []byte      // MspI, nil if absent
}

// WaveByID returns the Wave Data entry whose tag-suffix equals id, per the
// invariant that a note event's wave reference resolves to exactly one
// entry.
func (s *ScoreTrack) WaveByID(id uint8) (*WaveData, bool) {
	for _, w := range s.Wave {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

func decodeScoreTrack(id uint8, data []byte, offset int, log logging.Logger) (*ScoreTrack, error) {
	if len(data) < 4 {
		return nil, newParseError(offset, "MTR%02X chunk too short: %d bytes", id, len(data))
	}
	formatType := FormatType(data[0])
	sequenceType := data[1]
	timebaseDByte, timebaseGByte := data[2], data[3]
	data, offset = data[4:], offset+4

	if formatType != FormatHandyPhoneStandard && formatType != FormatMobileStandardNoCompress {
		return nil, newParseError(offset-4, "unsupported Score Track format_type %d", formatType)
	}

	timebaseD, err := DecodeTimebase(offset-2, timebaseDByte)
	if err != nil {
		return nil, err
	}
	timebaseG, err := DecodeTimebase(offset-1, timebaseGByte)
	if err != nil {
		return nil, err
	}

	status, rest, newOffset, err := decodeChannelStatusTable(formatType, data, offset)
	if err != nil {
		return nil, err
	}
	data, offset = rest, newOffset

	track := &ScoreTrack{
		ID:            id,
		FormatType:    formatType,
		SequenceType:  sequenceType,
		TimebaseD:     timebaseD,
		TimebaseG:     timebaseG,
		ChannelStatus: status,
	}

	err = readChunks(data, offset, func(chunk rawChunk, chunkOffset int) error {
		switch string(chunk.tag[:3]) {
		case "Mts":
			switch chunk.tag[3] {
			case 'u':
				track.SetupData = chunk.payload
				return nil
			case 'q':
				seq, err := decodeSequence(formatType, chunk.payload, chunkOffset+chunkHeaderSize, log)
				if err != nil {
					return err
				}
				track.Sequence = seq
				return nil
			case 'p':
				return readChunks(chunk.payload, chunkOffset+chunkHeaderSize, func(inner rawChunk, innerOffset int) error {
					if inner.tag[0] != 'M' || inner.tag[1] != 'w' || inner.tag[2] != 'a' {
						return newParseError(innerOffset, "unexpected tag %q inside Mtsp", inner.tag)
					}
					wave, err := decodeWaveData(inner.tag[3], inner.payload, innerOffset+chunkHeaderSize)
					if err != nil {
						return err
					}
					track.Wave = append(track.Wave, wave)
					return nil
				})
			}
		case "Msp":
			if chunk.tag[3] == 'I' {
				track.SeekInfo = chunk.payload
				return nil
			}
		}
		return newParseError(chunkOffset, "unexpected Score Track inner chunk tag %q", chunk.tag)
	})
	if err != nil {
		return nil, err
	}

	return track, nil
}

// decodeSequence dispatches to the Mobile-Standard or Handy-Phone sequence
// decoder based on the track's format_type.
func decodeSequence(formatType FormatType, data []byte, offset int, log logging.Logger) (*Sequence, error) {
	switch formatType {
	case FormatMobileStandardNoCompress:
		return decodeMobileSequence(data, offset)
	case FormatHandyPhoneStandard:
		return decodeHandyPhoneSequence(data, offset, log)
	default:
		return nil, newParseError(offset, "unsupported sequence format_type %d", formatType)
	}
}

// decodeChannelStatusTable reads the channel-status table whose layout
// depends on format_type: 16 one-byte entries for Mobile-Standard, or 2
// bytes packing 4 nibble-entries for Handy-Phone.
func decodeChannelStatusTable(formatType FormatType, data []byte, offset int) ([]ChannelStatus, []byte, int, error) {
	switch formatType {
	case FormatMobileStandardNoCompress, FormatMobileStandardCompress:
		if len(data) < 16 {
			return nil, nil, offset, newParseError(offset, "channel-status table too short: %d bytes", len(data))
		}
		status := make([]ChannelStatus, 16)
		for i, b := range data[:16] {
			status[i] = ChannelStatus{
				KeyControlStatus: b >> 6,
				VibrationStatus:  b&0x20 != 0,
				LED:              b&0x10 != 0,
				ChannelType:      ChannelType(b & 0x03),
			}
		}
		return status, data[16:], offset + 16, nil

	case FormatHandyPhoneStandard:
		if len(data) < 2 {
			return nil, nil, offset, newParseError(offset, "channel-status table too short: %d bytes", len(data))
		}
		status := make([]ChannelStatus, 4)
		nibbles := [4]uint8{data[0] >> 4, data[0] & 0x0F, data[1] >> 4, data[1] & 0x0F}
		for i, n := range nibbles {
			status[i] = ChannelStatus{
				KeyControlStatus: (n >> 3) & 0x01,
				VibrationStatus:  n&0x04 != 0,
				LED:              false,
				ChannelType:      ChannelType(n & 0x03),
			}
		}
		return status, data[2:], offset + 2, nil

	default:
		return nil, nil, offset, newParseError(offset, "unsupported format_type %d for channel-status table", formatType)
	}
}
