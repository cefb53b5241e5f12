/*
NAME
  errors.go - error types raised by the SMAF decoder.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "fmt"

// ParseError reports a malformed SMAF byte stream. It carries the byte
// offset at which decoding failed and a human-readable expectation, so a
// caller can locate the bad chunk without re-running the decoder.
type ParseError struct {
	Offset int    // Offset is the byte position at which decoding failed.
	Reason string // Reason is a human-readable description of what was expected.
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("smaf: parse error at offset %d: %s", e.Offset, e.Reason)
}

// newParseError builds a ParseError for the given offset.
func newParseError(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
