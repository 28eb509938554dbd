// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the canonical 44 byte PCM WAV header.
//
// Only the minimal layout is understood: a RIFF chunk, a 16 byte fmt chunk
// and a data chunk header, in that order, with no other chunks in between.
// Mono and stereo streams with 8 or 16 bits per sample are accepted.
//
// # Reading Headers
//
// ReadHeader consumes exactly HeaderSize bytes and validates them:
//
//	h, err := wav.ReadHeader(os.Stdin, nil)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(h.SampleRate, h.Channels, h.DataSize)
//
// Pass a FieldFunc to observe each field as it is decoded:
//
//	wav.ReadHeader(r, func(name string, v uint32) {
//	    fmt.Printf("%s: %d\n", name, v)
//	})
//
// The remaining stream is left untouched, so the caller reads the payload
// from the same reader.
//
// # Writing Headers
//
// Header.Bytes and Header.WriteTo serialize a header back to its canonical
// layout, so a parsed header can be patched and written out again:
//
//	h.SampleRate *= 2
//	h.ByteRate *= 2
//	h.WriteTo(os.Stdout)
//
// WriteSamples packs a go-audio IntBuffer after the header at the
// buffer's SourceBitDepth:
//
//	h := wav.NewMono16Header(8000, uint32(len(buf.Data)))
//	h.WriteTo(w)
//	wav.WriteSamples(w, buf)
//
// # Error Handling
//
// The package defines:
//   - *FormatError: a header check failed; Check says which one
//   - ErrInvalidHeader: wrapped by every *FormatError
//   - ErrTruncated: the stream ended too early
//   - ErrTrailingData: bytes were found past the declared end
//   - ErrUnsupportedBuffer: a sample buffer has no PCM packing
//
// Example:
//
//	_, err := wav.ReadHeader(r, nil)
//	var ferr *wav.FormatError
//	if errors.As(err, &ferr) && ferr.Check == wav.CheckChannels {
//	    fmt.Println("only mono and stereo are supported")
//	}
//
// # File Format
//
// The header layout, all multi-byte fields little-endian:
//   - 0: "RIFF", 4: RIFF size
//   - 8: "WAVE"
//   - 12: "fmt ", 16: fmt chunk size (16), 20: format tag (1)
//   - 22: channels, 24: sample rate, 28: byte rate
//   - 32: block align, 34: bits per sample
//   - 36: "data", 40: data size
package wav
