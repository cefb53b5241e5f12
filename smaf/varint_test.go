/*
LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "testing"

func TestReadVarIntEncodeVarIntRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 0x7F, 0x80, 200, 0x3FFF, 0x4000, 0xFFFFF, 0xFFFFFFF}
	for _, v := range cases {
		enc := EncodeVarInt(nil, v)
		got, rest, newOffset, err := ReadVarInt(enc, 10)
		if err != nil {
			t.Fatalf("ReadVarInt(%#x): %v", v, err)
		}
		if got != v {
			t.Errorf("ReadVarInt(EncodeVarInt(%#x)) = %#x, want %#x", v, got, v)
		}
		if len(rest) != 0 {
			t.Errorf("ReadVarInt(EncodeVarInt(%#x)) left %d trailing bytes, want 0", v, len(rest))
		}
		if newOffset != 10+len(enc) {
			t.Errorf("ReadVarInt(EncodeVarInt(%#x)) newOffset = %d, want %d", v, newOffset, 10+len(enc))
		}
	}
}

func TestEncodeVarInt200(t *testing.T) {
	got := EncodeVarInt(nil, 200)
	want := []byte{0x81, 0x48}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("EncodeVarInt(200) = %#v, want %#v", got, want)
	}
}

func TestReadVarIntTrailingBytesPreserved(t *testing.T) {
	enc := EncodeVarInt(nil, 0x80)
	enc = append(enc, 0xAA, 0xBB)
	_, rest, _, err := ReadVarInt(enc, 0)
	if err != nil {
		t.Fatalf("ReadVarInt: %v", err)
	}
	if len(rest) != 2 || rest[0] != 0xAA || rest[1] != 0xBB {
		t.Errorf("ReadVarInt left rest = %#v, want [0xAA 0xBB]", rest)
	}
}

func TestReadVarIntTruncated(t *testing.T) {
	// A continuation byte with nothing following.
	_, _, _, err := ReadVarInt([]byte{0x81}, 0)
	if err == nil {
		t.Fatal("ReadVarInt(truncated) = nil error, want a ParseError")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("ReadVarInt(truncated) error type = %T, want *ParseError", err)
	}
}

func TestReadVarIntTooWide(t *testing.T) {
	enc := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}
	_, _, _, err := ReadVarInt(enc, 0)
	if err == nil {
		t.Fatal("ReadVarInt(6-byte continuation run) = nil error, want a ParseError")
	}
}
