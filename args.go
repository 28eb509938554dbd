// SPDX-License-Identifier: EPL-2.0

package wavpipe

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ik5/wavpipe/audio"
)

// ErrUsage means the command line did not select a valid operation.
var ErrUsage = errors.New("usage error")

// Usage describes the accepted command lines.
const Usage = `usage:
  wavpipe info
  wavpipe rate <factor>
  wavpipe channel <left|right>
  wavpipe volume <factor>
  wavpipe generate [--dur D] [--sr SR] [--fm FM] [--fc FC] [--mi MI] [--amp AMP]`

// ParseArgs turns the arguments following the program name into an
// Operation. Every failure wraps ErrUsage.
func ParseArgs(args []string) (Operation, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing command", ErrUsage)
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "info":
		if err := wantArgs(cmd, rest, 0); err != nil {
			return nil, err
		}

		return Info{}, nil

	case "rate":
		factor, err := parseFactor(cmd, rest)
		if err != nil {
			return nil, err
		}

		if factor <= 0 {
			return nil, fmt.Errorf("%w: rate factor %g must be positive", ErrUsage, factor)
		}

		return Rate{Factor: factor}, nil

	case "channel":
		if err := wantArgs(cmd, rest, 1); err != nil {
			return nil, err
		}

		keep, err := audio.ParseChannel(rest[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}

		return Channel{Keep: keep}, nil

	case "volume":
		factor, err := parseFactor(cmd, rest)
		if err != nil {
			return nil, err
		}

		return Volume{Factor: factor}, nil

	case "generate":
		tone, err := parseTone(rest)
		if err != nil {
			return nil, err
		}

		return Generate{Tone: tone}, nil
	}

	return nil, fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

func wantArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, cmd, n, len(args))
	}

	return nil
}

func parseFactor(cmd string, args []string) (float64, error) {
	if err := wantArgs(cmd, args, 1); err != nil {
		return 0, err
	}

	factor, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s factor: %w", ErrUsage, cmd, err)
	}

	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%w: %s factor %q is not finite", ErrUsage, cmd, args[0])
	}

	return factor, nil
}

func parseTone(args []string) (audio.Tone, error) {
	tone := audio.DefaultTone()

	flagSet := flag.NewFlagSet("generate", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	flagSet.IntVar(&tone.Duration, "dur", tone.Duration, "duration in seconds")
	flagSet.IntVar(&tone.SampleRate, "sr", tone.SampleRate, "sample rate in hertz")
	flagSet.Float64Var(&tone.ModFreq, "fm", tone.ModFreq, "modulating frequency in hertz")
	flagSet.Float64Var(&tone.CarrierFreq, "fc", tone.CarrierFreq, "carrier frequency in hertz")
	flagSet.Float64Var(&tone.ModIndex, "mi", tone.ModIndex, "modulation index")
	flagSet.Float64Var(&tone.Amplitude, "amp", tone.Amplitude, "peak amplitude")

	if err := flagSet.Parse(args); err != nil {
		return tone, fmt.Errorf("%w: generate: %w", ErrUsage, err)
	}

	if flagSet.NArg() != 0 {
		return tone, fmt.Errorf("%w: generate: unexpected argument %q", ErrUsage, flagSet.Arg(0))
	}

	if err := tone.Validate(); err != nil {
		return tone, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return tone, nil
}
