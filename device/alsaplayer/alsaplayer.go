/*
NAME
  alsaplayer.go - an AudioBackend that renders wave playback to a real
  ALSA PCM output device, and logs (rather than synthesizes) MIDI events.

DESCRIPTION
  This is the concrete backend spec.md §6 calls a "thin adapter" and keeps
  out of core scope; it exists here so cmd/mmfplay can play a .mmf file on
  real hardware rather than only against the mock backend used in tests.
  Grounded on device/alsa.ALSA's use of github.com/yobert/alsa, adapted
  from capture (record) to playback.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package alsaplayer provides a player.AudioBackend backed by a real ALSA
// PCM playback device.
package alsaplayer

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	yalsa "github.com/yobert/alsa"

	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

// Backend drives ALSA PCM output for wave playback and logs MIDI events.
type Backend struct {
	l     logging.Logger
	title string // ALSA device title to open, or "" for the first playback device.

	mu  sync.Mutex
	dev *yalsa.Device // Currently configured device, re-opened if rate/channels change.

	rate     int
	channels int
}

// New returns a Backend that opens the ALSA playback device named title
// (or the first available playback device if title is ""), logging through
// l (which may be nil).
func New(l logging.Logger, title string) *Backend {
	return &Backend{l: l, title: title}
}

// PlayWave implements player.AudioBackend.
func (b *Backend) PlayWave(channels int, samplingRate uint32, samples []int16) {
	if err := b.playWave(channels, int(samplingRate), samples); err != nil {
		b.logf("error", "alsa playback failed", "error", err.Error())
	}
}

func (b *Backend) playWave(channels, rate int, samples []int16) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dev == nil || b.rate != rate || b.channels != channels {
		if err := b.reopen(channels, rate); err != nil {
			return errors.Wrap(err, "opening ALSA playback device")
		}
	}

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	if _, err := b.dev.Write(buf); err != nil {
		return errors.Wrap(err, "writing ALSA playback buffer")
	}
	return nil
}

// reopen closes any existing device and opens+negotiates a new one for the
// requested channels and rate.
func (b *Backend) reopen(channels, rate int) error {
	if b.dev != nil {
		b.dev.Close()
		b.dev = nil
	}

	cards, err := yalsa.OpenCards()
	if err != nil {
		return err
	}
	defer yalsa.CloseCards(cards)

	var dev *yalsa.Device
	for _, card := range cards {
		devices, err := card.Devices()
		if err != nil {
			continue
		}
		for _, d := range devices {
			if d.Type != yalsa.PCM || !d.Play {
				continue
			}
			if d.Title == b.title || b.title == "" {
				dev = d
				break
			}
		}
		if dev != nil {
			break
		}
	}
	if dev == nil {
		return errors.New("no ALSA playback device found")
	}

	if err := dev.Open(); err != nil {
		return err
	}
	if _, err := dev.NegotiateChannels(channels); err != nil {
		return err
	}
	negotiatedRate, err := dev.NegotiateRate(rate)
	if err != nil {
		return err
	}
	if _, err := dev.NegotiateFormat(yalsa.S16_LE); err != nil {
		return err
	}
	if err := dev.Prepare(); err != nil {
		return err
	}

	b.dev = dev
	b.rate = negotiatedRate
	b.channels = channels
	b.logf("debug", "configured ALSA playback device", "title", dev.Title, "rate", negotiatedRate, "channels", channels)
	return nil
}

// MidiNoteOn implements player.AudioBackend. No MIDI synthesizer is in
// scope (spec.md Non-goals); this only logs.
func (b *Backend) MidiNoteOn(channel, note, velocity uint8) {
	b.logf("debug", "midi note-on", "channel", channel, "note", note, "velocity", velocity)
}

// MidiNoteOff implements player.AudioBackend.
func (b *Backend) MidiNoteOff(channel, note, velocity uint8) {
	b.logf("debug", "midi note-off", "channel", channel, "note", note, "velocity", velocity)
}

// MidiProgramChange implements player.AudioBackend.
func (b *Backend) MidiProgramChange(channel, program uint8) {
	b.logf("debug", "midi program-change", "channel", channel, "program", program)
}

// MidiControlChange implements player.AudioBackend.
func (b *Backend) MidiControlChange(channel, control, value uint8) {
	b.logf("debug", "midi control-change", "channel", channel, "control", control, "value", value)
}

// Sleep implements player.AudioBackend.
func (b *Backend) Sleep(ctx context.Context, d int64) {
	t := time.NewTimer(time.Duration(d) * time.Millisecond)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// NowMillis implements player.AudioBackend.
func (b *Backend) NowMillis() int64 { return time.Now().UnixMilli() }

// Close releases the ALSA device, if one is open.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dev == nil {
		return nil
	}
	err := b.dev.Close()
	b.dev = nil
	return err
}

func (b *Backend) logf(level, msg string, args ...interface{}) {
	if b.l == nil {
		return
	}
	switch level {
	case "error":
		b.l.Error(msg, args...)
	default:
		b.l.Debug(msg, args...)
	}
}
