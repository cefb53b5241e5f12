/*
NAME
  sequence_handyphone.go - the Handy-Phone-Standard (format_type=0)
  sequence-event decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "github.com/ausocean/utils/logging"

// decodeHandyPhoneSequence decodes a Mtsq payload encoded with the
// Handy-Phone-Standard status-byte scheme (spec.md §4.3). Unrecognized
// extended-status patterns are reported to log (which may be nil) and
// skipped rather than treated as fatal, matching "warn and skip" in
// spec.md.
func decodeHandyPhoneSequence(data []byte, offset int, log logging.Logger) (*Sequence, error) {
	seq := &Sequence{}
	for {
		if len(data) == 0 {
			break
		}
		if len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 0 && data[3] == 0 {
			data, offset = data[4:], offset+4
			break
		}

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

		ev, rest2, off2, skip, err := decodeHandyPhoneStatus(status, data, offset, log)
		if err != nil {
			return nil, err
		}
		data, offset = rest2, off2
		if skip {
			continue
		}
		seq.Events = append(seq.Events, TimedEvent{DurationTicks: duration, Event: ev})
	}
	return seq, nil
}

func decodeHandyPhoneStatus(status byte, data []byte, offset int, log logging.Logger) (ev Event, rest []byte, newOffset int, skip bool, err error) {
	switch {
	case status >= 0x01 && status <= 0xFE:
		channel := status >> 6
		octave := (status >> 4) & 0x03
		noteInOctave := status & 0x0F
		note := noteInOctave + octave*12

		gate, rest2, off2, err := ReadVarInt(data, offset)
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventNote, Note: NoteMessage{Channel: channel, Note: note, Velocity: 64, GateTime: gate}}, rest2, off2, false, nil

	case status == 0x00:
		if len(data) < 1 {
			return Event{}, nil, offset, false, newParseError(offset, "truncated extended-event selector")
		}
		b := data[0]
		data, offset = data[1:], offset+1
		return decodeHandyPhoneExtended(b, data, offset, log)

	case status == 0xFF:
		if len(data) < 1 {
			return Event{}, nil, offset, false, newParseError(offset, "truncated meta-event marker")
		}
		meta := data[0]
		data, offset = data[1:], offset+1
		switch meta {
		case 0xF0:
			if len(data) < 1 {
				return Event{}, nil, offset, false, newParseError(offset, "truncated exclusive length byte")
			}
			length := int(data[0])
			data, offset = data[1:], offset+1
			if length > len(data) {
				return Event{}, nil, offset, false, newParseError(offset, "exclusive message length %d exceeds remaining bytes", length)
			}
			payload := data[:length]
			return Event{Kind: EventExclusive, Exclusive: Exclusive{Data: payload}}, data[length:], offset + length, false, nil
		case 0x00:
			return Event{Kind: EventNop}, data, offset, false, nil
		default:
			return Event{}, nil, offset, false, newParseError(offset, "unsupported Handy-Phone meta-event type 0x%02X", meta)
		}

	default:
		return Event{}, nil, offset, false, newParseError(offset, "unsupported Handy-Phone status byte 0x%02X", status)
	}
}

// decodeHandyPhoneExtended dispatches the 0x00-prefixed extended-event byte
// b. The match order below is normative (spec.md §4.3, §9): the more
// specific 0x3F-masked patterns are tested before the looser 0x30/0x00
// masks so that e.g. PitchBend (0x38) is never mistaken for the
// PitchBend-short form (mask 0x30).
func decodeHandyPhoneExtended(b byte, data []byte, offset int, log logging.Logger) (ev Event, rest []byte, newOffset int, skip bool, err error) {
	channel := b >> 6

	readOperand := func() (byte, []byte, int, error) {
		if len(data) < 1 {
			return 0, nil, offset, newParseError(offset, "truncated extended-event operand")
		}
		return data[0], data[1:], offset + 1, nil
	}

	switch {
	case b&0x3F == 0x30:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventProgramChange, ProgramChange: ProgramChange{Channel: channel, Program: v}}, rest2, off2, false, nil

	case b&0x3F == 0x31:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventBankSelect, Extended: Extended{Channel: channel, Value: v}}, rest2, off2, false, nil

	case b&0x3F == 0x32:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventOctaveShift, Extended: Extended{Channel: channel, Value: v}}, rest2, off2, false, nil

	case b&0x3F == 0x33:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventModulation, Extended: Extended{Channel: channel, Value: v}}, rest2, off2, false, nil

	case b&0x3F == 0x38:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventPitchBend, PitchBend: PitchBend{Channel: channel, ValueLSB: v}}, rest2, off2, false, nil

	case b&0x3F == 0x37:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventVolume, Extended: Extended{Channel: channel, Value: v}}, rest2, off2, false, nil

	case b&0x3F == 0x3A:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventPan, Extended: Extended{Channel: channel, Value: v}}, rest2, off2, false, nil

	case b&0x3F == 0x3B:
		v, rest2, off2, err := readOperand()
		if err != nil {
			return Event{}, nil, offset, false, err
		}
		return Event{Kind: EventExpression, Extended: Extended{Channel: channel, Value: v}}, rest2, off2, false, nil

	case b&0x30 == 0x10:
		return Event{Kind: EventPitchBend, PitchBend: PitchBend{Channel: channel, ValueLSB: b & 0x0F}}, data, offset, false, nil

	case b&0x30 == 0x00:
		return Event{Kind: EventExpression, Extended: Extended{Channel: channel, Value: b & 0x0F}}, data, offset, false, nil

	default:
		if log != nil {
			log.Warning("skipping unrecognized Handy-Phone extended status byte", "byte", b)
		}
		return Event{}, data, offset, true, nil
	}
}
