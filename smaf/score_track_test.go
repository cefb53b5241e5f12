/*
LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "testing"

func TestDecodeScoreTrackHandyPhone(t *testing.T) {
	var seqData []byte
	seqData = append(seqData, EncodeVarInt(nil, 0)...)
	seqData = append(seqData, 0x01) // channel 0, octave 0, note-in-octave 1.
	seqData = append(seqData, EncodeVarInt(nil, 4)...)
	seqData = append(seqData, 0, 0, 0, 0) // terminator

	waveData := []byte{0x20, 0x1F, 0x40, 0x11, 0x22} // mono, YamahaADPCM, 4-bit, 8000Hz.

	var payload []byte
	payload = append(payload, byte(FormatHandyPhoneStandard), 0x00, 0x00, 0x00) // format, seqType, timebaseD, timebaseG
	payload = append(payload, 0x00, 0x00)                                       // channel-status table (2 bytes)
	payload = append(payload, buildChunk("Mtsq", seqData)...)
	payload = append(payload, buildChunk("Mtsp", buildChunk("Mwa\x00", waveData))...)

	track, err := decodeScoreTrack(0, payload, 0, nil)
	if err != nil {
		t.Fatalf("decodeScoreTrack: %v", err)
	}

	if track.FormatType != FormatHandyPhoneStandard {
		t.Errorf("FormatType = %v, want FormatHandyPhoneStandard", track.FormatType)
	}
	if track.TimebaseD != 1 || track.TimebaseG != 1 {
		t.Errorf("timebases = %d/%d, want 1/1", track.TimebaseD, track.TimebaseG)
	}
	if len(track.ChannelStatus) != 4 {
		t.Fatalf("got %d channel-status entries, want 4", len(track.ChannelStatus))
	}
	if track.Sequence == nil || len(track.Sequence.Events) != 1 {
		t.Fatalf("Sequence = %+v, want exactly 1 event", track.Sequence)
	}
	if track.Sequence.Events[0].Event.Note.Note != 1 {
		t.Errorf("note = %d, want 1", track.Sequence.Events[0].Event.Note.Note)
	}

	wave, ok := track.WaveByID(0)
	if !ok {
		t.Fatal("WaveByID(0) not found")
	}
	if wave.Channel != Mono || wave.Format != StreamYamahaADPCM || wave.BaseBit != BaseBit4 || wave.SamplingFreq != 8000 {
		t.Errorf("wave = %+v, want mono/YamahaADPCM/4-bit/8000Hz", wave)
	}
	if string(wave.Data) != "\x11\x22" {
		t.Errorf("wave data = %#v, want [0x11 0x22]", wave.Data)
	}
}

func TestDecodeScoreTrackUnsupportedFormatType(t *testing.T) {
	payload := []byte{byte(FormatMobileStandardCompress), 0, 0, 0}
	payload = append(payload, make([]byte, 16)...) // Mobile-layout channel status.
	if _, err := decodeScoreTrack(0, payload, 0, nil); err == nil {
		t.Fatal("decodeScoreTrack(MobileStandardCompress) = nil error, want a ParseError")
	}
}

func TestDecodeChannelStatusTableMobile(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0b1111_0001 // KeyControlStatus=3, vibration=1, LED=1, ChannelType=1
	status, rest, newOffset, err := decodeChannelStatusTable(FormatMobileStandardNoCompress, data, 0)
	if err != nil {
		t.Fatalf("decodeChannelStatusTable: %v", err)
	}
	if len(status) != 16 || len(rest) != 0 || newOffset != 16 {
		t.Fatalf("got %d entries, %d rest bytes, offset %d", len(status), len(rest), newOffset)
	}
	if status[0].KeyControlStatus != 3 || !status[0].VibrationStatus || !status[0].LED || status[0].ChannelType != ChannelType(1) {
		t.Errorf("status[0] = %+v", status[0])
	}
}

func TestDecodeChannelStatusTableHandyPhone(t *testing.T) {
	data := []byte{0b0000_1101, 0x00}
	status, rest, newOffset, err := decodeChannelStatusTable(FormatHandyPhoneStandard, data, 0)
	if err != nil {
		t.Fatalf("decodeChannelStatusTable: %v", err)
	}
	if len(status) != 4 || len(rest) != 0 || newOffset != 2 {
		t.Fatalf("got %d entries, %d rest bytes, offset %d", len(status), len(rest), newOffset)
	}
	// First nibble 0000, second nibble 1101.
	if status[0].KeyControlStatus != 0 || status[0].VibrationStatus || status[0].ChannelType != ChannelNoCare {
		t.Errorf("status[0] = %+v", status[0])
	}
	if status[1].KeyControlStatus != 1 || !status[1].VibrationStatus || status[1].ChannelType != ChannelType(1) {
		t.Errorf("status[1] = %+v", status[1])
	}
}
