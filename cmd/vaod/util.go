package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/star-aerosol/vaod"
)

// newLogger builds the console diagnostics logger. User dialogue goes to
// stdout directly; this logger carries fetch URLs, probe failures and skip
// notices on stderr. Set VAOD_DEBUG for probe-level detail.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("VAOD_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig reads the optional settings file, exiting on a malformed one.
func loadConfig(path string, logger zerolog.Logger) vaod.Config {
	cfg, err := vaod.LoadConfig(path)
	if err != nil {
		logger.Error().Err(err).Msg("cannot load settings file")
		setExitStatus(1)
		exit()
	}
	return cfg
}

// confirmAndDownload gates a transfer on explicit consent. download runs
// only on an affirmative answer; a decline prints declineNotice and an ended
// input stream does nothing.
func confirmAndDownload(out io.Writer, prompter *vaod.Prompter, question, declineNotice string, download func() error) error {
	confirmed, err := prompter.Confirm(question)
	if err != nil {
		return nil
	}
	if !confirmed {
		fmt.Fprintln(out, declineNotice)
		return nil
	}
	return download()
}

// reportMissing prints the satellites/periods for which no remote file was
// found.
func reportMissing(missing []vaod.Missing) {
	if len(missing) == 0 {
		return
	}
	fmt.Println("\nNo data files are available for the following satellites/dates:")
	for _, m := range missing {
		fmt.Println(m.SatTag, m.PeriodKey)
	}
}
