// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavpipe/formats/wav"
	"github.com/ik5/wavpipe/utils"
)

// RewriteRate multiplies the sample rate and byte rate metadata by factor
// without touching the sample data, so playback speeds up or slows down.
// The declared payload is copied exactly, followed by any trailing bytes.
func RewriteRate(w io.Writer, r io.Reader, factor float64) error {
	h, err := wav.ReadHeader(r, nil)
	if err != nil {
		return err
	}

	sampleRate, err := utils.ScaleUint32(h.SampleRate, factor)
	if err != nil {
		return fmt.Errorf("sample rate %d x %g: %w", h.SampleRate, factor, err)
	}

	byteRate, err := utils.ScaleUint32(h.ByteRate, factor)
	if err != nil {
		return fmt.Errorf("byte rate %d x %g: %w", h.ByteRate, factor, err)
	}

	h.SampleRate = sampleRate
	h.ByteRate = byteRate

	if _, err := h.WriteTo(w); err != nil {
		return err
	}

	if err := CopyPayload(w, r, h.DataSize); err != nil {
		return err
	}

	_, err = Passthrough(w, r)

	return err
}
