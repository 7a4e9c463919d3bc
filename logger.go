package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/9seconds/iplookup/lookuplib"
)

type logger struct {
	lookupLog zerolog.Logger
	loadLog   zerolog.Logger
}

func (l *logger) LookupOK(index int, ip, provider string) {
	l.lookupLog.Debug().Int("index", index).Str("ip", ip).Str("provider", provider).Msg("")
}

func (l *logger) LookupError(index int, ip, provider string, err error) {
	l.lookupLog.Error().Int("index", index).Str("ip", ip).Str("provider", provider).Err(err).Msg("")
}

func (l *logger) ListLoaded(path string, size int) {
	l.loadLog.Info().Str("path", path).Int("size", size).Msg("IP list was loaded")
}

func newLogger(w io.Writer, debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &logger{
		lookupLog: zerolog.New(w).Level(level).With().Timestamp().Str("event_name", "lookup").Logger(),
		loadLog:   zerolog.New(w).Level(level).With().Timestamp().Str("event_name", "load").Logger(),
	}
}

var _ lookuplib.Logger = &logger{}
