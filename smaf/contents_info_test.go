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

func TestDecodeContentsInfo(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 0xAA, 0xBB}
	info, err := decodeContentsInfo(data, 0)
	if err != nil {
		t.Fatalf("decodeContentsInfo: %v", err)
	}
	if info.ContentClass != 1 || info.ContentType != 2 || info.ContentCodeType != 3 ||
		info.CopyStatus != 4 || info.CopyCounts != 5 {
		t.Errorf("info = %+v, want fields 1..5", info)
	}
	if string(info.Options) != "\xaa\xbb" {
		t.Errorf("options = %#v, want trailing 2 bytes", info.Options)
	}
}

func TestDecodeContentsInfoTooShort(t *testing.T) {
	if _, err := decodeContentsInfo([]byte{1, 2, 3}, 0); err == nil {
		t.Fatal("decodeContentsInfo(short) = nil error, want a ParseError")
	}
}

func TestDecodeOptionalData(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	got := decodeOptionalData(data)
	if string(got.Data) != string(data) {
		t.Errorf("OptionalData.Data = %#v, want %#v", got.Data, data)
	}
}
