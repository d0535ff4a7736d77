//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package logger provides the configurable logger shared by all aig
// components. The default logger writes to a console writer on
// stderr and is disabled under "go test".
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Set overrides the global logger.
func Set(l zerolog.Logger) {
	log = l
}

// Disable disables logging.
func Disable() {
	log = zerolog.Nop()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log
}
