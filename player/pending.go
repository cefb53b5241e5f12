/*
NAME
  pending.go - the pending note-off map: an ordered mapping from absolute
  end-time-ms to the note-offs due at that time.

DESCRIPTION
  spec.md §9 requires ordered iteration by key, insertion, and split-at-key;
  a hash map does not suffice. This mirrors the shape internal/mul.Reader
  uses for its cached index entries (a small sorted slice, binary-searched)
  generalized to support splitting at an arbitrary key.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import "sort"

// noteOff is one (channel, note, velocity) triple due to be turned off.
type noteOff struct {
	channel, note, velocity uint8
}

// pendingBucket groups every noteOff due at the same absolute end-time.
type pendingBucket struct {
	atMillis int64
	offs     []noteOff
}

// pendingNoteOffs is a time-ordered, per-track map of scheduled note-offs.
// Multiple triples may share a key; buckets are kept in ascending atMillis
// order.
type pendingNoteOffs struct {
	buckets []pendingBucket
}

// insert schedules off to fire at atMillis, merging into an existing bucket
// for that exact millisecond if one exists.
func (p *pendingNoteOffs) insert(atMillis int64, off noteOff) {
	i := sort.Search(len(p.buckets), func(i int) bool { return p.buckets[i].atMillis >= atMillis })
	if i < len(p.buckets) && p.buckets[i].atMillis == atMillis {
		p.buckets[i].offs = append(p.buckets[i].offs, off)
		return
	}
	p.buckets = append(p.buckets, pendingBucket{})
	copy(p.buckets[i+1:], p.buckets[i:])
	p.buckets[i] = pendingBucket{atMillis: atMillis, offs: []noteOff{off}}
}

// splitBefore removes and returns every bucket whose atMillis is strictly
// less than before, in ascending time order, leaving the rest untouched.
func (p *pendingNoteOffs) splitBefore(before int64) []pendingBucket {
	i := sort.Search(len(p.buckets), func(i int) bool { return p.buckets[i].atMillis >= before })
	if i == 0 {
		return nil
	}
	earlier := p.buckets[:i:i]
	p.buckets = p.buckets[i:]
	return earlier
}
