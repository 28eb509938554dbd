// SPDX-License-Identifier: EPL-2.0

// This tool transforms a PCM WAV stream read from stdin and writes the
// result to stdout. See wavpipe.Usage for the accepted commands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavpipe"
	"github.com/sirupsen/logrus"
)

// logLevelEnv selects the logrus level, e.g. "debug".
const logLevelEnv = "WAVPIPE_LOG_LEVEL"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv(logLevelEnv)))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, level string) int {
	log := newLogger(stderr, level)

	op, err := wavpipe.ParseArgs(args)
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		fmt.Fprintln(stderr, wavpipe.Usage)

		return 1
	}

	if err := wavpipe.Run(op, stdin, stdout, log); err != nil {
		log.WithError(err).WithField("command", op.Name()).Error("command failed")
		return 1
	}

	return 0
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	if level == "" {
		return log
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warnf("ignoring %s", logLevelEnv)
		return log
	}

	log.SetLevel(lvl)

	return log
}
