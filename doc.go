// SPDX-License-Identifier: EPL-2.0

// Package wavpipe runs single-pass transformations on PCM WAV streams.
//
// One invocation reads at most one WAV stream and writes at most one, with
// no seeking, so it works on pipes:
//
//	wavpipe info < in.wav
//	wavpipe rate 2 < in.wav > fast.wav
//	wavpipe channel left < stereo.wav > mono.wav
//	wavpipe volume 0.5 < in.wav > quiet.wav
//	wavpipe generate --dur 1 --sr 8000 > tone.wav
//
// # Operations
//
// ParseArgs turns a command line into an Operation, one of:
//   - Info: validate the input and print its header fields
//   - Rate: multiply sample rate and byte rate metadata
//   - Channel: keep the left or right channel of a stereo input
//   - Volume: multiply sample amplitudes with clamping
//   - Generate: synthesize a phase-modulated test tone
//
// Run executes an Operation against a pair of streams:
//
//	op, err := wavpipe.ParseArgs([]string{"volume", "0.5"})
//	if err != nil {
//	    // errors.Is(err, wavpipe.ErrUsage)
//	}
//
//	err = wavpipe.Run(op, os.Stdin, os.Stdout, logrus.New())
//
// The transforms themselves live in the audio subpackage and the header
// codec in formats/wav; use them directly for more control.
//
// # Errors
//
// Every error is fatal to the invocation. Besides ErrUsage, callers can
// match wav.ErrTruncated, wav.ErrTrailingData and *wav.FormatError with
// errors.Is and errors.As.
package wavpipe
