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

func TestDecodeMobileSequence(t *testing.T) {
	var data []byte
	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0x90, 60, 100) // Note-on, channel 0, note 60, velocity 100.
	data = append(data, EncodeVarInt(nil, 10)...)

	data = append(data, EncodeVarInt(nil, 5)...)
	data = append(data, 0xB0, 7, 127) // Control change, channel 0, control 7, value 127.

	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0xC3, 9) // Program change, channel 3, program 9.

	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0xE1, 0x10, 0x20) // Pitch bend, channel 1.

	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0xF0) // Exclusive, length 2, payload.
	data = append(data, EncodeVarInt(nil, 2)...)
	data = append(data, 0xDE, 0xAD)

	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0xFF, 0x2F, 0x00) // End of track.

	seq, err := decodeMobileSequence(data, 0)
	if err != nil {
		t.Fatalf("decodeMobileSequence: %v", err)
	}
	if len(seq.Events) != 6 {
		t.Fatalf("got %d events, want 6", len(seq.Events))
	}

	note := seq.Events[0]
	if note.Event.Kind != EventNote || note.Event.Note.Channel != 0 || note.Event.Note.Note != 60 ||
		note.Event.Note.Velocity != 100 || note.Event.Note.GateTime != 10 {
		t.Errorf("note event = %+v, want channel=0 note=60 velocity=100 gate=10", note.Event)
	}

	cc := seq.Events[1]
	if cc.Event.Kind != EventControlChange || cc.Event.ControlChange != (ControlChange{Channel: 0, Control: 7, Value: 127}) {
		t.Errorf("control-change event = %+v", cc.Event)
	}
	if cc.DurationTicks != 5 {
		t.Errorf("control-change duration = %d, want 5", cc.DurationTicks)
	}

	pc := seq.Events[2]
	if pc.Event.Kind != EventProgramChange || pc.Event.ProgramChange != (ProgramChange{Channel: 3, Program: 9}) {
		t.Errorf("program-change event = %+v", pc.Event)
	}

	pb := seq.Events[3]
	if pb.Event.Kind != EventPitchBend || pb.Event.PitchBend != (PitchBend{Channel: 1, ValueLSB: 0x10, ValueMSB: 0x20}) {
		t.Errorf("pitch-bend event = %+v", pb.Event)
	}

	ex := seq.Events[4]
	if ex.Event.Kind != EventExclusive || string(ex.Event.Exclusive.Data) != "\xde\xad" {
		t.Errorf("exclusive event = %+v", ex.Event)
	}

	end := seq.Events[5]
	if end.Event.Kind != EventNop {
		t.Errorf("final event kind = %v, want EventNop", end.Event.Kind)
	}
}

func TestDecodeMobileNoteOnWithoutVelocityDefaultsTo64(t *testing.T) {
	var data []byte
	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0x82, 45) // Note-on (no-velocity form), channel 2, note 45.
	data = append(data, EncodeVarInt(nil, 3)...)
	data = append(data, EncodeVarInt(nil, 0)...)
	data = append(data, 0xFF, 0x2F, 0x00)

	seq, err := decodeMobileSequence(data, 0)
	if err != nil {
		t.Fatalf("decodeMobileSequence: %v", err)
	}
	note := seq.Events[0].Event.Note
	if note.Channel != 2 || note.Note != 45 || note.Velocity != 64 || note.GateTime != 3 {
		t.Errorf("note = %+v, want channel=2 note=45 velocity=64 gate=3", note)
	}
}

func TestDecodeMobileStatusUnsupported(t *testing.T) {
	_, _, _, _, err := decodeMobileStatus(0x00, nil, 0)
	if err == nil {
		t.Fatal("decodeMobileStatus(0x00) = nil error, want a ParseError")
	}
}
