/*
NAME
  pcm_audio_track.go - the ATR{x} (PCM Audio Track) top-level chunk and its
  inner chunks: Seek/Phrase Info, Setup Data, Sequence Data, Wave Data.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "github.com/ausocean/utils/logging"

// PcmWaveData is an Awa{n} chunk: raw encoded audio identified by n.
type PcmWaveData struct {
	ID   uint8
	Data []byte
}

// PcmAudioTrack is the decoded ATR{x} chunk.
type PcmAudioTrack struct {
	ID           uint8
	SequenceType PcmSequenceType
	Channel      Channel
	Format       PCMWaveFormat
	SamplingFreq uint32
	BaseBit      BaseBit
	TimebaseD    uint32
	TimebaseG    uint32
	SeekInfo     []byte // AspI, nil if absent
	SetupData    []byte // Atsu, nil if absent
	Sequence     *Sequence
	Wave         []*PcmWaveData
}

// WaveByID returns the Wave Data entry whose tag-suffix equals id.
func (t *PcmAudioTrack) WaveByID(id uint8) (*PcmWaveData, bool) {
	for _, w := range t.Wave {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

func decodePcmAudioTrack(id uint8, data []byte, offset int, log logging.Logger) (*PcmAudioTrack, error) {
	if len(data) < 6 {
		return nil, newParseError(offset, "ATR%02X chunk too short: %d bytes", id, len(data))
	}
	formatType := data[0]
	if formatType != 0 {
		return nil, newParseError(offset, "unsupported PCM Audio Track format_type %d", formatType)
	}
	sequenceType := PcmSequenceType(data[1])
	waveType := uint16(data[2])<<8 | uint16(data[3])
	timebaseDByte, timebaseGByte := data[4], data[5]
	data, offset = data[6:], offset+6

	channel := Channel((waveType >> 15) & 0x01)
	format := PCMWaveFormat((waveType >> 12) & 0x07)
	freqIndex := uint8((waveType >> 8) & 0x0F)
	baseBit := BaseBit((waveType >> 4) & 0x0F)

	samplingFreq, err := decodeSamplingFreq(offset-4, freqIndex)
	if err != nil {
		return nil, err
	}
	timebaseD, err := DecodeTimebase(offset-2, timebaseDByte)
	if err != nil {
		return nil, err
	}
	timebaseG, err := DecodeTimebase(offset-1, timebaseGByte)
	if err != nil {
		return nil, err
	}

	track := &PcmAudioTrack{
		ID:           id,
		SequenceType: sequenceType,
		Channel:      channel,
		Format:       format,
		SamplingFreq: samplingFreq,
		BaseBit:      baseBit,
		TimebaseD:    timebaseD,
		TimebaseG:    timebaseG,
	}

	err = readChunks(data, offset, func(chunk rawChunk, chunkOffset int) error {
		switch string(chunk.tag[:3]) {
		case "Asp":
			if chunk.tag[3] == 'I' {
				track.SeekInfo = chunk.payload
				return nil
			}
		case "Ats":
			switch chunk.tag[3] {
			case 'u':
				track.SetupData = chunk.payload
				return nil
			case 'q':
				// PCM Audio Track sequences use the Handy-Phone-Standard
				// status-byte scheme: Volume/Pan/Expression events (which
				// PcmAudioTrackPlayer, spec.md §4.5, dispatches on) only
				// ever arise from that decoder, never from Mobile-Standard.
				seq, err := decodeHandyPhoneSequence(chunk.payload, chunkOffset+chunkHeaderSize, log)
				if err != nil {
					return err
				}
				track.Sequence = seq
				return nil
			}
		case "Awa":
			track.Wave = append(track.Wave, &PcmWaveData{ID: chunk.tag[3], Data: chunk.payload})
			return nil
		}
		return newParseError(chunkOffset, "unexpected PCM Audio Track inner chunk tag %q", chunk.tag)
	})
	if err != nil {
		return nil, err
	}

	return track, nil
}
