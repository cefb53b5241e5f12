/*
NAME
  backend.go - the AudioBackend capability a player drives.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package player walks a decoded SMAF tree in simulated time, issuing
// note-on/off, control-change, program-change, and wave-playback calls to
// an external AudioBackend.
package player

import "context"

// AudioBackend is the capability a player dispatches to. Implementations
// must be safe to call from the goroutine PlaySmaf spawns for each track;
// beyond that, the concurrency model places no requirements on a backend
// (spec.md §5 — the Send/Sync boundary is an implementation detail, not a
// design requirement).
//
// All methods other than Sleep must not block meaningfully: they are
// expected to enqueue into the backend's own buffers and return promptly.
type AudioBackend interface {
	// PlayWave enqueues a PCM buffer of signed 16-bit samples for playback
	// at samplingRate Hz, with 1 (mono) or 2 (stereo) channels.
	PlayWave(channels int, samplingRate uint32, samples []int16)

	// MidiNoteOn and MidiNoteOff emit MIDI-style note events. channel is in
	// [0, 15]; note and velocity are in [0, 127].
	MidiNoteOn(channel, note, velocity uint8)
	MidiNoteOff(channel, note, velocity uint8)

	// MidiProgramChange selects the instrument/program for channel.
	MidiProgramChange(channel, program uint8)

	// MidiControlChange emits a MIDI control-change event.
	MidiControlChange(channel, control, value uint8)

	// Sleep suspends the calling goroutine for at least d, or until ctx is
	// done, whichever comes first. This is the player's only suspension
	// point.
	Sleep(ctx context.Context, d Duration)

	// NowMillis returns a monotonic millisecond clock reading.
	NowMillis() int64
}

// Duration is milliseconds, matching the millisecond granularity of
// timebases and gate times throughout the format.
type Duration = int64
