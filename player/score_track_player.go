/*
NAME
  score_track_player.go - walks one Score Track's sequence in simulated
  time, dispatching note-on/off, control-change, program-change, and
  wave-trigger events to an AudioBackend.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"

	"github.com/dlunch/smaf/codec/adpcmb"
	"github.com/dlunch/smaf/smaf"
)

// ScoreTrackPlayer walks one Score Track's sequence data against backend,
// maintaining a private pending-note-off map.
type ScoreTrackPlayer struct {
	track   *smaf.ScoreTrack
	backend AudioBackend
	cancel  *Canceler
	log     logging.Logger

	pending pendingNoteOffs
}

// NewScoreTrackPlayer constructs a player for track. log may be nil.
func NewScoreTrackPlayer(track *smaf.ScoreTrack, backend AudioBackend, cancel *Canceler, log logging.Logger) *ScoreTrackPlayer {
	return &ScoreTrackPlayer{track: track, backend: backend, cancel: cancel, log: log}
}

// Play runs the track to completion, or until ctx is done or cancel fires.
// Any lookup failure (missing sequence, missing wave data) or unsupported
// wave shape is returned as a fatal error for this player alone; it never
// touches the backend again.
func (p *ScoreTrackPlayer) Play(ctx context.Context) error {
	if p.track.Sequence == nil {
		return errors.Errorf("score track %d has no Mtsq sequence data", p.track.ID)
	}

	now := p.backend.NowMillis()
	for _, timed := range p.track.Sequence.Events {
		eventStart := now + int64(timed.DurationTicks)*int64(p.track.TimebaseD)

		earlier := p.pending.splitBefore(eventStart)
		for _, bucket := range earlier {
			if bucket.atMillis > now {
				p.backend.Sleep(ctx, bucket.atMillis-now)
				now = p.backend.NowMillis()
			}
			if p.cancel.Cancelled() || ctx.Err() != nil {
				return nil
			}
			for _, off := range bucket.offs {
				p.debugf("note-off (flush)", "channel", off.channel, "note", off.note)
				p.backend.MidiNoteOff(off.channel, off.note, off.velocity)
			}
		}

		if eventStart > now {
			p.backend.Sleep(ctx, eventStart-now)
			now = p.backend.NowMillis()
		}

		if p.cancel.Cancelled() || ctx.Err() != nil {
			return nil
		}

		if err := p.dispatch(timed.Event, now); err != nil {
			return err
		}
	}
	return nil
}

func (p *ScoreTrackPlayer) dispatch(ev smaf.Event, now int64) error {
	switch ev.Kind {
	case smaf.EventNote:
		n := ev.Note
		if n.Note == 0 {
			return p.triggerWave(n.Channel)
		}
		p.debugf("note-on", "channel", n.Channel, "note", n.Note, "velocity", n.Velocity)
		p.backend.MidiNoteOn(n.Channel, n.Note, n.Velocity)
		endAt := now + int64(n.GateTime)*int64(p.track.TimebaseG)
		p.pending.insert(endAt, noteOff{channel: n.Channel, note: n.Note, velocity: n.Velocity})
		return nil

	case smaf.EventControlChange:
		cc := ev.ControlChange
		p.debugf("control-change", "channel", cc.Channel, "control", cc.Control, "value", cc.Value)
		p.backend.MidiControlChange(cc.Channel, cc.Control, cc.Value)
		return nil

	case smaf.EventProgramChange:
		pc := ev.ProgramChange
		p.debugf("program-change", "channel", pc.Channel, "program", pc.Program)
		p.backend.MidiProgramChange(pc.Channel, pc.Program)
		return nil

	case smaf.EventPitchBend, smaf.EventExclusive, smaf.EventNop:
		return nil

	default:
		// Reserved Handy-Phone extended kinds (bank select, octave shift,
		// modulation, volume, pan, expression) have no score-track backend
		// method yet; treat them as reserved no-ops like pitch-bend.
		return nil
	}
}

// triggerWave implements the "note 0 triggers the PCM wave referenced by
// channel+1" behavior. This is not documented by the format; it is
// inferred from the original implementation and the bell.mmf test vector
// (spec.md §9, Open Questions) and is preserved verbatim.
func (p *ScoreTrackPlayer) triggerWave(channel uint8) error {
	id := channel + 1
	wave, ok := p.track.WaveByID(id)
	if !ok {
		return errors.Errorf("score track %d: note-0 wave trigger references missing wave data Mwa%02X", p.track.ID, id)
	}
	if wave.Format != smaf.StreamYamahaADPCM {
		return errors.Errorf("score track %d: wave %02X has unsupported format %d, want YamahaADPCM", p.track.ID, id, wave.Format)
	}
	if wave.BaseBit != smaf.BaseBit4 {
		return errors.Errorf("score track %d: wave %02X has unsupported base-bit %d, want 4-bit", p.track.ID, id, wave.BaseBit)
	}
	if wave.Channel != smaf.Mono {
		return errors.Errorf("score track %d: wave %02X is %s, want mono", p.track.ID, id, wave.Channel)
	}

	pcm, err := adpcmb.Decode(wave.Data)
	if err != nil {
		return errors.Wrapf(err, "score track %d: decoding wave %02X", p.track.ID, id)
	}
	samples := bytesToInt16LE(pcm)
	p.debugf("play-wave", "channel", channel, "samplingFreq", wave.SamplingFreq, "samples", len(samples))
	p.backend.PlayWave(1, uint32(wave.SamplingFreq), samples)
	return nil
}

func (p *ScoreTrackPlayer) debugf(msg string, args ...interface{}) {
	if p.log != nil {
		p.log.Debug(msg, args...)
	}
}
