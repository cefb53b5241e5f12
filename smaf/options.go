/*
NAME
  options.go - functional options for Decode.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package smaf

import "github.com/ausocean/utils/logging"

// decodeConfig holds the options collected from Option values.
type decodeConfig struct {
	log logging.Logger
}

// Option configures a Decode call.
type Option func(*decodeConfig)

// WithLogger routes non-fatal decoder warnings (e.g. unrecognized
// Handy-Phone extended status bytes) to log instead of discarding them.
func WithLogger(log logging.Logger) Option {
	return func(c *decodeConfig) {
		c.log = log
	}
}
