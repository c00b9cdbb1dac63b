package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds the leveled logger the rest of the program shares.
// Output always goes to stderr; trace-level logging additionally
// tees to an append-only file, since a full instruction trace is too
// verbose to read live but useful to keep around after a run.
func newLogger(level zerolog.Level, logFile string) (zerolog.Logger, func(), error) {
	out := io.Writer(zerolog.ConsoleWriter{Out: os.Stderr})
	closeFn := func() {}

	if level <= zerolog.TraceLevel {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Logger{}, closeFn, err
		}
		out = io.MultiWriter(out, f)
		closeFn = func() { f.Close() }
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return log, closeFn, nil
}
