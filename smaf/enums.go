/*
NAME
  enums.go - bit-field enumerations shared across SMAF chunk types.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// Channel is the mono/stereo flag packed into wave-type and channel-status
// fields throughout the format.
type Channel uint8

const (
	Mono Channel = iota
	Stereo
)

func (c Channel) String() string {
	if c == Stereo {
		return "stereo"
	}
	return "mono"
}

// BaseBit is the sample bit depth, encoded as a 2-bit index rather than the
// literal bit count.
type BaseBit uint8

const (
	BaseBit4 BaseBit = iota
	BaseBit8
	BaseBit12
	BaseBit16
)

// Bits returns the literal number of bits per sample.
func (b BaseBit) Bits() int {
	switch b {
	case BaseBit4:
		return 4
	case BaseBit8:
		return 8
	case BaseBit12:
		return 12
	case BaseBit16:
		return 16
	default:
		return 0
	}
}

// StreamWaveFormat is the sample encoding of a Score-Track PCM wave
// (Mwa{n} chunks).
type StreamWaveFormat uint8

const (
	StreamTwosComplementPCM StreamWaveFormat = iota
	StreamOffsetBinaryPCM
	StreamYamahaADPCM
)

// PCMWaveFormat is the sample encoding of a PCM Audio Track (ATR{x}).
type PCMWaveFormat uint8

const (
	PCMTwosComplementPCM PCMWaveFormat = iota
	PCMADPCM
	PCMTwinVQ
	PCMMP3
)

// ChannelType classifies what a score-track channel is used for.
type ChannelType uint8

const (
	ChannelNoCare ChannelType = iota
	ChannelMelody
	ChannelNoMelody
	ChannelRhythm
)

// FormatType selects the sequence-event encoding and channel-status layout
// of a Score Track.
type FormatType uint8

const (
	FormatHandyPhoneStandard       FormatType = 0
	FormatMobileStandardCompress   FormatType = 1
	FormatMobileStandardNoCompress FormatType = 2
)

// PcmSequenceType distinguishes a PCM Audio Track's single data stream from
// one built of independently addressable sub-sequences.
type PcmSequenceType uint8

const (
	PcmStream      PcmSequenceType = 0
	PcmSubSequence PcmSequenceType = 1
)

// samplingFreqTable maps a PCM Audio Track's 4-bit sampling-frequency index
// to Hz, per spec.
var samplingFreqTable = [...]uint32{4000, 8000, 11025, 22050, 44100}

// decodeSamplingFreq resolves a PCM Audio Track sampling-frequency index. It
// is fatal (per spec) for any index outside the table.
func decodeSamplingFreq(offset int, index uint8) (uint32, error) {
	if int(index) >= len(samplingFreqTable) {
		return 0, newParseError(offset, "invalid PCM sampling frequency index %d", index)
	}
	return samplingFreqTable[index], nil
}

// ChannelStatus describes one score-track channel's control bits.
type ChannelStatus struct {
	KeyControlStatus uint8
	VibrationStatus  bool
	LED              bool
	ChannelType      ChannelType
}
