// SPDX-License-Identifier: EPL-2.0

// Package audio provides single-pass transforms over PCM WAV streams.
//
// Every transform reads one WAV stream from an io.Reader and writes the
// result to an io.Writer in a single sequential pass; nothing is seeked
// and nothing is held in memory beyond a small fixed buffer:
//   - Inspect validates a stream and prints its header fields
//   - RewriteRate patches the sample rate and byte rate metadata
//   - SelectChannel downmixes stereo to mono by keeping one channel
//   - ScaleVolume multiplies sample amplitudes with clamping
//   - Synthesize generates a phase-modulated test tone from scratch
//
// # Stream Layout
//
// Input starts with the canonical 44 byte header (see formats/wav),
// followed by DataSize payload bytes. Anything after the payload is
// trailing data; transforms other than Inspect copy it through with
// Passthrough.
//
//	in, out := bufio.NewReader(os.Stdin), bufio.NewWriter(os.Stdout)
//	defer out.Flush()
//
//	if err := audio.ScaleVolume(out, in, 0.5); err != nil {
//	    return err
//	}
//
// # Sample Format
//
// Samples keep their stored width:
//   - 8-bit samples are unsigned magnitudes in [0,255]; no 128 offset is
//     applied
//   - 16-bit samples are signed little-endian values in [-32768,32767]
//
// Scaled values are clamped to the sample range before rounding, so they
// never wrap.
//
// # Error Handling
//
// Errors are never recovered from; the first one aborts the transform.
// Output written before the error is not rolled back, so a header may
// already be on w when a payload read fails:
//
//	err := audio.RewriteRate(out, in, 2)
//	if errors.Is(err, wav.ErrTruncated) {
//	    // payload shorter than the header declared
//	}
package audio
