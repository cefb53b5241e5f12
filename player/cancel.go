/*
NAME
  cancel.go - the cancellation flag shared by all players in one PlaySmaf
  call.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import "sync/atomic"

// Canceler is a single flag shared among every track player spawned by one
// PlaySmaf call. It is set at most once; relaxed ordering is sufficient
// since there is no other data for a happens-before relationship to
// protect (spec.md §9).
type Canceler struct {
	flag atomic.Bool
}

// Cancel requests that every player using this Canceler return at its next
// suspension point. Pending note-offs are not flushed; this is an
// intentional fast-exit, not an oversight (spec.md §5).
func (c *Canceler) Cancel() { c.flag.Store(true) }

// Cancelled reports whether Cancel has been called.
func (c *Canceler) Cancelled() bool { return c.flag.Load() }
