/*
NAME
  sequence.go - event types shared by the Mobile-Standard and Handy-Phone
  sequence decoders.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// EventKind discriminates the payload carried by an Event.
type EventKind uint8

const (
	EventNote EventKind = iota
	EventControlChange
	EventProgramChange
	EventPitchBend
	EventExclusive
	EventNop

	// Handy-Phone extended events; no Mobile-Standard equivalent status
	// byte exists for these, they only ever appear from the Handy-Phone
	// decoder.
	EventBankSelect
	EventOctaveShift
	EventModulation
	EventVolume
	EventPan
	EventExpression
)

// NoteMessage is a note-on (note > 0) or a wave trigger (note == 0, see
// player.ScoreTrackPlayer).
type NoteMessage struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
	GateTime uint32 // ticks
}

// ControlChange is a MIDI-style control-change event.
type ControlChange struct {
	Channel uint8
	Control uint8
	Value   uint8
}

// ProgramChange selects the instrument/program for a channel.
type ProgramChange struct {
	Channel uint8
	Program uint8
}

// PitchBend carries the two raw bytes of a pitch-bend event. Whether they
// are combined into one 14-bit value or kept as two independent 7-bit values
// is left to the consumer (spec.md §9, Open Questions): this decoder keeps
// them separate, matching the test vectors.
type PitchBend struct {
	Channel  uint8
	ValueLSB uint8
	ValueMSB uint8
}

// Exclusive is a raw system-exclusive payload.
type Exclusive struct {
	Data []byte
}

// Extended is a catch-all for the single-byte-operand Handy-Phone extended
// events (bank select, octave shift, modulation, volume, pan, expression).
type Extended struct {
	Channel uint8
	Value   uint8
}

// Event is one decoded sequence event together with its kind-specific
// payload. Exactly one of the typed fields is meaningful, selected by Kind.
type Event struct {
	Kind EventKind

	Note          NoteMessage
	ControlChange ControlChange
	ProgramChange ProgramChange
	PitchBend     PitchBend
	Exclusive     Exclusive
	Extended      Extended
}

// TimedEvent pairs an event with the tick delta since the previous event in
// its sequence (duration_ticks in spec.md §4.3).
type TimedEvent struct {
	DurationTicks uint32
	Event         Event
}

// Sequence is the decoded, ordered list of timed events from one Mtsq or
// Atsq chunk.
type Sequence struct {
	Events []TimedEvent
}
