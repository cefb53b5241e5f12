/*
NAME
  main.go - mmfplay decodes a SMAF (.mmf) ringtone file and plays it through
  a real ALSA device.

DESCRIPTION
  mmfplay is the "thin adapter" spec.md §6 leaves out of core scope: read a
  file, decode it, run the player against a concrete AudioBackend.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements mmfplay, a command-line SMAF (.mmf) player.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ausocean/utils/logging"

	"github.com/dlunch/smaf/device/alsaplayer"
	"github.com/dlunch/smaf/internal/logsetup"
	"github.com/dlunch/smaf/player"
	"github.com/dlunch/smaf/smaf"
)

const (
	defaultLogPath = "mmfplay.log"

	exitOK     = 0
	exitParse  = 1
	exitIOOrIF = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	logPath := flag.String("log", defaultLogPath, "Path to the rotated log file.")
	alsaDevice := flag.String("alsa-device", "", "ALSA playback device title (empty: first available).")
	verbose := flag.Bool("v", false, "Log to stderr as well as the log file.")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mmfplay [flags] <path.mmf>")
		return exitIOOrIF
	}
	path := flag.Arg(0)

	log := logsetup.New(*logPath, logging.Debug, *verbose)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("could not read file", "path", path, "error", err.Error())
		return exitIOOrIF
	}

	file, err := smaf.Decode(data, smaf.WithLogger(log))
	if err != nil {
		log.Error("could not decode smaf file", "path", path, "error", err.Error())
		return exitParse
	}
	log.Info("decoded smaf file", "path", path, "chunks", len(file.Chunks))

	backend := alsaplayer.New(log, *alsaDevice)
	defer backend.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var stop player.Canceler
	go func() {
		<-ctx.Done()
		stop.Cancel()
	}()

	if err := player.PlaySmaf(ctx, file, backend, &stop, log); err != nil {
		log.Error("playback failed", "path", path, "error", err.Error())
		return exitIOOrIF
	}

	log.Info("playback complete", "path", path)
	return exitOK
}
