/*
NAME
  pcm_audio_track_player.go - walks one PCM Audio Track's sequence in
  simulated time, triggering wave playback.

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

// PcmAudioTrackPlayer walks one PCM Audio Track's sequence data against
// backend. Unlike ScoreTrackPlayer it has no gate-time/note-off concept:
// every event either triggers a wave or is a no-op.
type PcmAudioTrackPlayer struct {
	track   *smaf.PcmAudioTrack
	backend AudioBackend
	cancel  *Canceler
	log     logging.Logger
}

// NewPcmAudioTrackPlayer constructs a player for track. log may be nil.
func NewPcmAudioTrackPlayer(track *smaf.PcmAudioTrack, backend AudioBackend, cancel *Canceler, log logging.Logger) *PcmAudioTrackPlayer {
	return &PcmAudioTrackPlayer{track: track, backend: backend, cancel: cancel, log: log}
}

// Play runs the track to completion, or until ctx is done or cancel fires.
func (p *PcmAudioTrackPlayer) Play(ctx context.Context) error {
	if p.track.Sequence == nil {
		return errors.Errorf("pcm audio track %d has no Atsq sequence data", p.track.ID)
	}

	for _, timed := range p.track.Sequence.Events {
		d := int64(timed.DurationTicks) * int64(p.track.TimebaseD)
		if d > 0 {
			p.backend.Sleep(ctx, d)
		}

		if p.cancel.Cancelled() || ctx.Err() != nil {
			return nil
		}

		if timed.Event.Kind != smaf.EventNote {
			continue // Volume, Pan, Expression, PitchBend, Exclusive, Nop, etc: no-op for now.
		}
		if err := p.triggerWave(timed.Event.Note.Note); err != nil {
			return err
		}
	}
	return nil
}

// triggerWave looks up the Awa{n} chunk matching waveNumber and plays it.
func (p *PcmAudioTrackPlayer) triggerWave(waveNumber uint8) error {
	wave, ok := p.track.WaveByID(waveNumber)
	if !ok {
		return errors.Errorf("pcm audio track %d: wave message references missing wave data Awa%02X", p.track.ID, waveNumber)
	}
	if p.track.Format != smaf.PCMADPCM {
		return errors.Errorf("pcm audio track %d: unsupported wave format %d, want ADPCM", p.track.ID, p.track.Format)
	}
	if p.track.BaseBit != smaf.BaseBit4 {
		return errors.Errorf("pcm audio track %d: unsupported base-bit %d, want 4-bit", p.track.ID, p.track.BaseBit)
	}
	if p.track.Channel != smaf.Mono {
		return errors.Errorf("pcm audio track %d: unsupported channel %s, want mono", p.track.ID, p.track.Channel)
	}

	pcm, err := adpcmb.Decode(wave.Data)
	if err != nil {
		return errors.Wrapf(err, "pcm audio track %d: decoding wave %02X", p.track.ID, waveNumber)
	}
	samples := bytesToInt16LE(pcm)
	if p.log != nil {
		p.log.Debug("play-wave", "track", p.track.ID, "wave", waveNumber, "samples", len(samples))
	}
	p.backend.PlayWave(1, p.track.SamplingFreq, samples)
	return nil
}
