// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavpipe/formats/wav"
	"github.com/ik5/wavpipe/utils"
)

// volumeBlockSize is a multiple of every supported sample size.
const volumeBlockSize = 4096

// ScaleVolume multiplies every sample of the declared payload by factor.
//
// The header is copied unchanged. 8-bit samples are treated as unsigned
// magnitudes clamped to [0,255]; 16-bit samples are signed and clamped to
// the int16 range. The payload must hold DataSize/BytesPerSample whole
// samples, otherwise wav.ErrTruncated is returned. Bytes after the last
// sample are copied through.
func ScaleVolume(w io.Writer, r io.Reader, factor float64) error {
	h, err := wav.ReadHeader(r, nil)
	if err != nil {
		return err
	}

	if _, err := h.WriteTo(w); err != nil {
		return err
	}

	bytesPerSample := h.BytesPerSample()
	totalSamples := int64(h.DataSize) / int64(bytesPerSample)
	remaining := totalSamples * int64(bytesPerSample)

	var block [volumeBlockSize]byte

	for remaining > 0 {
		want := int(min(remaining, volumeBlockSize))

		n, err := io.ReadFull(r, block[:want])
		whole := n - n%bytesPerSample
		scaleSamples(block[:whole], h.BitsPerSample, factor)

		if _, werr := w.Write(block[:whole]); werr != nil {
			return fmt.Errorf("writing samples: %w", werr)
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			done := totalSamples - (remaining-int64(whole))/int64(bytesPerSample)
			return fmt.Errorf("sample %d of %d: %w", done, totalSamples, wav.ErrTruncated)
		}

		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}

		remaining -= int64(n)
	}

	_, err = Passthrough(w, r)

	return err
}

// scaleSamples rescales whole samples in place.
func scaleSamples(b []byte, bitsPerSample uint16, factor float64) {
	switch bitsPerSample {
	case 8:
		for i, v := range b {
			b[i] = utils.ClampRoundUint8(float64(v) * factor)
		}
	case 16:
		for i := 0; i+1 < len(b); i += 2 {
			v := int16(binary.LittleEndian.Uint16(b[i:]))
			binary.LittleEndian.PutUint16(b[i:], uint16(utils.ClampRoundInt16(float64(v)*factor)))
		}
	}
}
