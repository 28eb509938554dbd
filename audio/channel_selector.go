// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavpipe/formats/wav"
)

// Channel selects which side of a stereo frame survives a downmix.
type Channel int

const (
	Left Channel = iota
	Right
)

// ParseChannel accepts "left" or "right".
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
}

func (c Channel) String() string {
	if c == Right {
		return "right"
	}

	return "left"
}

// maxFrameSize is a stereo frame at the widest supported sample size.
const maxFrameSize = 2 * 2

// SelectChannel reads a WAV stream from r and writes a mono stream to w
// holding only the kept channel.
//
// Mono input is copied through unchanged. For stereo input the header is
// patched to one channel and every whole frame in the stream is reduced to
// its kept sample, including frames past the declared data size. A partial
// final frame is copied through as is.
func SelectChannel(w io.Writer, r io.Reader, keep Channel) error {
	h, err := wav.ReadHeader(r, nil)
	if err != nil {
		return err
	}

	if h.Channels == 1 {
		if _, err := h.WriteTo(w); err != nil {
			return err
		}

		if err := CopyPayload(w, r, h.DataSize); err != nil {
			return err
		}

		_, err = Passthrough(w, r)

		return err
	}

	bytesPerSample := h.BytesPerSample()

	h.Channels = 1
	h.BlockAlign = uint16(bytesPerSample)
	h.ByteRate = h.SampleRate * uint32(h.BlockAlign)
	h.DataSize /= 2

	if _, err := h.WriteTo(w); err != nil {
		return err
	}

	offset := 0
	if keep == Right {
		offset = bytesPerSample
	}

	var frame [maxFrameSize]byte
	frameSize := 2 * bytesPerSample

	for {
		n, err := io.ReadFull(r, frame[:frameSize])
		if errors.Is(err, io.EOF) {
			return nil
		}

		if errors.Is(err, io.ErrUnexpectedEOF) {
			if _, err := w.Write(frame[:n]); err != nil {
				return fmt.Errorf("writing partial frame: %w", err)
			}

			return nil
		}

		if err != nil {
			return fmt.Errorf("reading frame: %w", err)
		}

		if _, err := w.Write(frame[offset : offset+bytesPerSample]); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}
}
