/*
LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import "context"

// backendCall records one dispatch to mockBackend, timestamped against its
// simulated clock.
type backendCall struct {
	at      int64
	kind    string
	channel uint8
	note    uint8
	value   uint8
}

// mockBackend is an AudioBackend with a simulated clock: Sleep advances the
// clock instead of actually blocking, so tests run instantly and
// deterministically.
type mockBackend struct {
	now   int64
	calls []backendCall
}

func (m *mockBackend) NowMillis() int64 { return m.now }

func (m *mockBackend) Sleep(ctx context.Context, d int64) { m.now += d }

func (m *mockBackend) PlayWave(channels int, samplingRate uint32, samples []int16) {
	m.calls = append(m.calls, backendCall{at: m.now, kind: "wave"})
}

func (m *mockBackend) MidiNoteOn(channel, note, velocity uint8) {
	m.calls = append(m.calls, backendCall{at: m.now, kind: "on", channel: channel, note: note, value: velocity})
}

func (m *mockBackend) MidiNoteOff(channel, note, velocity uint8) {
	m.calls = append(m.calls, backendCall{at: m.now, kind: "off", channel: channel, note: note, value: velocity})
}

func (m *mockBackend) MidiProgramChange(channel, program uint8) {
	m.calls = append(m.calls, backendCall{at: m.now, kind: "program", channel: channel, value: program})
}

func (m *mockBackend) MidiControlChange(channel, control, value uint8) {
	m.calls = append(m.calls, backendCall{at: m.now, kind: "cc", channel: channel, note: control, value: value})
}
