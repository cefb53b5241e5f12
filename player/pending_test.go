/*
LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package player

import "testing"

func TestPendingNoteOffsInsertKeepsAscendingOrder(t *testing.T) {
	var p pendingNoteOffs
	p.insert(30, noteOff{note: 3})
	p.insert(10, noteOff{note: 1})
	p.insert(20, noteOff{note: 2})

	var order []int64
	for _, b := range p.buckets {
		order = append(order, b.atMillis)
	}
	if len(order) != 3 || order[0] != 10 || order[1] != 20 || order[2] != 30 {
		t.Fatalf("buckets in order %v, want [10 20 30]", order)
	}
}

func TestPendingNoteOffsMergesExactMillisecond(t *testing.T) {
	var p pendingNoteOffs
	p.insert(10, noteOff{note: 1})
	p.insert(10, noteOff{note: 2})

	if len(p.buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(p.buckets))
	}
	if len(p.buckets[0].offs) != 2 {
		t.Fatalf("got %d offs in the merged bucket, want 2", len(p.buckets[0].offs))
	}
}

func TestPendingNoteOffsSplitBeforeRemovesOnlyEarlier(t *testing.T) {
	var p pendingNoteOffs
	p.insert(10, noteOff{note: 1})
	p.insert(20, noteOff{note: 2})
	p.insert(30, noteOff{note: 3})

	earlier := p.splitBefore(25)
	if len(earlier) != 2 || earlier[0].atMillis != 10 || earlier[1].atMillis != 20 {
		t.Fatalf("splitBefore(25) = %+v, want buckets at 10 and 20", earlier)
	}
	if len(p.buckets) != 1 || p.buckets[0].atMillis != 30 {
		t.Fatalf("remaining buckets = %+v, want just 30", p.buckets)
	}
}

func TestPendingNoteOffsSplitBeforeEmpty(t *testing.T) {
	var p pendingNoteOffs
	p.insert(10, noteOff{note: 1})
	if got := p.splitBefore(5); got != nil {
		t.Errorf("splitBefore(before earliest bucket) = %+v, want nil", got)
	}
	if len(p.buckets) != 1 {
		t.Errorf("splitBefore must not consume buckets it doesn't return")
	}
}
