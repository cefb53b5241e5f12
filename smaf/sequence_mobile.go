/*
NAME
  sequence_mobile.go - the Mobile-Standard (format_type=2) sequence-event
  decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// decodeMobileSequence decodes a Mtsq payload encoded with the
// Mobile-Standard MIDI-like status-byte scheme (spec.md §4.3).
func decodeMobileSequence(data []byte, offset int) (*Sequence, error) {
	seq := &Sequence{}
	for len(data) > 0 {
		duration, rest, newOffset, err := ReadVarInt(data, offset)
		if err != nil {
			return nil, err
		}
		data, offset = rest, newOffset

		if len(data) == 0 {
			return nil, newParseError(offset, "sequence ends after duration with no status byte")
		}
		status := data[0]
		data, offset = data[1:], offset+1

		ev, rest, newOffset, done, err := decodeMobileStatus(status, data, offset)
		if err != nil {
			return nil, err
		}
		seq.Events = append(seq.Events, TimedEvent{DurationTicks: duration, Event: ev})
		data, offset = rest, newOffset
		if done {
			break
		}
	}
	return seq, nil
}

func decodeMobileStatus(status byte, data []byte, offset int) (ev Event, rest []byte, newOffset int, done bool, err error) {
	switch {
	case status >= 0x80 && status <= 0x8F:
		note, velocity, gate, rest2, off2, err := decodeMobileNoteOperands(data, offset, false)
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventNote, Note: NoteMessage{Channel: status & 0x0F, Note: note, Velocity: velocity, GateTime: gate}}, rest2, off2, false, nil

	case status >= 0x90 && status <= 0x9F:
		note, velocity, gate, rest2, off2, err := decodeMobileNoteOperands(data, offset, true)
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventNote, Note: NoteMessage{Channel: status & 0x0F, Note: note, Velocity: velocity, GateTime: gate}}, rest2, off2, false, nil

	case status >= 0xB0 && status <= 0xBF:
		if len(data) < 2 {
			return Event{}, nil, offset, false, newParseError(offset, "truncated control-change operands")
		}
		return Event{Kind: EventControlChange, ControlChange: ControlChange{Channel: status & 0x0F, Control: data[0], Value: data[1]}}, data[2:], offset + 2, false, nil

	case status >= 0xC0 && status <= 0xCF:
		if len(data) < 1 {
			return Event{}, nil, offset, false, newParseError(offset, "truncated program-change operand")
		}
		return Event{Kind: EventProgramChange, ProgramChange: ProgramChange{Channel: status & 0x0F, Program: data[0]}}, data[1:], offset + 1, false, nil

	case status >= 0xE0 && status <= 0xEF:
		if len(data) < 2 {
			return Event{}, nil, offset, false, newParseError(offset, "truncated pitch-bend operands")
		}
		return Event{Kind: EventPitchBend, PitchBend: PitchBend{Channel: status & 0x0F, ValueLSB: data[0], ValueMSB: data[1]}}, data[2:], offset + 2, false, nil

	case status == 0xF0:
		length, rest2, off2, err := ReadVarInt(data, offset)
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		if uint64(length) > uint64(len(rest2)) {
			return Event{}, nil, off2, false, newParseError(off2, "exclusive message length %d exceeds remaining bytes", length)
		}
		payload := rest2[:length]
		return Event{Kind: EventExclusive, Exclusive: Exclusive{Data: payload}}, rest2[length:], off2 + int(length), false, nil

	case status == 0xFF:
		if len(data) < 1 {
			return Event{}, nil, offset, false, newParseError(offset, "truncated meta-event marker")
		}
		meta := data[0]
		data, offset = data[1:], offset+1
		switch meta {
		case 0x2F:
			if len(data) < 1 {
				return Event{}, nil, offset, false, newParseError(offset, "truncated end-of-track meta event")
			}
			return Event{Kind: EventNop}, data[1:], offset + 1, true, nil
		case 0x00:
			return Event{Kind: EventNop}, data, offset, false, nil
		default:
			return Event{}, nil, offset, false, newParseError(offset, "unsupported meta-event type 0x%02X", meta)
		}

	default:
		return Event{}, nil, offset, false, newParseError(offset, "unsupported Mobile-Standard status byte 0x%02X", status)
	}
}

// decodeMobileNoteOperands reads the note's operands. withVelocity selects
// between the 0x80-series (no explicit velocity, fixed at 64) and the
// 0x90-series (explicit velocity byte) forms.
func decodeMobileNoteOperands(data []byte, offset int, withVelocity bool) (note, velocity uint8, gate uint32, rest []byte, newOffset int, err error) {
	if len(data) < 1 {
		return 0, 0, 0, nil, offset, newParseError(offset, "truncated note operands")
	}
	note = data[0]
	data, offset = data[1:], offset+1

	velocity = 64
	if withVelocity {
		if len(data) < 1 {
			return 0, 0, 0, nil, offset, newParseError(offset, "truncated note velocity")
		}
		velocity = data[0]
		data, offset = data[1:], offset+1
	}

	gate, rest, newOffset, err = ReadVarInt(data, offset)
	if err != nil {
		return 0, 0, 0, nil, offset, err
	}
	return note, velocity, gate, rest, newOffset, nil
}
