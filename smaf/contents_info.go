/*
NAME
  contents_info.go - the CNTI (Contents Info) top-level chunk.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// ContentsInfo is the CNTI top-level chunk: five classification bytes
// followed by an opaque, vendor-defined option block.
type ContentsInfo struct {
	ContentClass    uint8
	ContentType     uint8
	ContentCodeType uint8
	CopyStatus      uint8
	CopyCounts      uint8
	Options         []byte
}

const contentsInfoFixedSize = 5

func decodeContentsInfo(data []byte, offset int) (*ContentsInfo, error) {
	if len(data) < contentsInfoFixedSize {
		return nil, newParseError(offset, "CNTI chunk too short: %d bytes", len(data))
	}
	return &ContentsInfo{
		ContentClass:    data[0],
		ContentType:     data[1],
		ContentCodeType: data[2],
		CopyStatus:      data[3],
		CopyCounts:      data[4],
		Options:         data[contentsInfoFixedSize:],
	}, nil
}

// OptionalData is the OPDA top-level chunk: an opaque payload retained
// verbatim.
type OptionalData struct {
	Data []byte
}

func decodeOptionalData(data []byte) *OptionalData {
	return &OptionalData{Data: data}
}
