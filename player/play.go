/*
NAME
  play.go - PlaySmaf: constructs one player per track and runs them
  concurrently, joining on completion or cancellation.

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
	"sync"

	"github.com/ausocean/utils/logging"

	"github.com/dlunch/smaf/smaf"
)

// Player is anything PlaySmaf can run to completion.
type Player interface {
	Play(ctx context.Context) error
}

// PlaySmaf constructs one ScoreTrackPlayer per Score Track and one
// PcmAudioTrackPlayer per PCM Audio Track in file, runs them concurrently,
// and waits for all of them to finish, for ctx to be done, or for stop to
// be cancelled. log may be nil. It returns the first error reported by any
// track player, if any.
func PlaySmaf(ctx context.Context, file *smaf.File, backend AudioBackend, stop *Canceler, log logging.Logger) error {
	if stop == nil {
		stop = &Canceler{}
	}

	var players []Player
	for _, track := range file.ScoreTracks() {
		players = append(players, NewScoreTrackPlayer(track, backend, stop, log))
	}
	for _, track := range file.PcmAudioTracks() {
		players = append(players, NewPcmAudioTrackPlayer(track, backend, stop, log))
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for _, p := range players {
		wg.Add(1)
		go func(p Player) {
			defer wg.Done()
			if err := p.Play(ctx); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}(p)
	}
	wg.Wait()

	return firstErr
}
