/*
LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

// stubLogger is a minimal logging.Logger for tests that only care whether
// a particular level was hit.
type stubLogger struct {
	debug, info, warn, errorf, fatal func(msg string, args ...interface{})
}

func (s *stubLogger) Debug(msg string, args ...interface{}) {
	if s.debug != nil {
		s.debug(msg, args...)
	}
}

func (s *stubLogger) Info(msg string, args ...interface{}) {
	if s.info != nil {
		s.info(msg, args...)
	}
}

func (s *stubLogger) Warning(msg string, args ...interface{}) {
	if s.warn != nil {
		s.warn(msg, args...)
	}
}

func (s *stubLogger) Error(msg string, args ...interface{}) {
	if s.errorf != nil {
		s.errorf(msg, args...)
	}
}

func (s *stubLogger) Fatal(msg string, args ...interface{}) {
	if s.fatal != nil {
		s.fatal(msg, args...)
	}
}

func (s *stubLogger) SetLevel(int8) {}

func (s *stubLogger) Log(level int8, msg string, args ...interface{}) {
	s.Debug(msg, args...)
}
