/*
NAME
  logsetup.go - constructs the logging.Logger shared by cmd/mmfplay, the
  smaf decoder, and the player.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logsetup wires up an ausocean/utils/logging.Logger that writes to
// a rotating file via lumberjack and, optionally, stderr.
package logsetup

import (
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Rotation policy for the log file, matching the teacher's cmd/ programs.
const (
	maxSizeMB  = 100
	maxBackups = 10
	maxAgeDays = 28
)

// New returns a logging.Logger at level that writes to path (rotated via
// lumberjack) and, if toStderr is true, also to os.Stderr. level is one of
// the logging.{Debug,Info,Warning,Error,Fatal} constants.
func New(path string, level int8, toStderr bool) logging.Logger {
	fileLog := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	var w io.Writer = fileLog
	if toStderr {
		w = io.MultiWriter(fileLog, os.Stderr)
	}
	return logging.New(level, w, true)
}
