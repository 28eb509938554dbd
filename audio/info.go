// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavpipe/formats/wav"
)

// Inspect validates a WAV stream and prints each header field to out as
// "<name>: <value>" while it is decoded. The declared payload must be
// present and must be followed by end of stream.
func Inspect(r io.Reader, out io.Writer) (wav.Header, error) {
	var printErr error

	h, err := wav.ReadHeader(r, func(name string, v uint32) {
		if printErr == nil {
			_, printErr = fmt.Fprintf(out, "%s: %d\n", name, v)
		}
	})
	if err != nil {
		return h, err
	}

	if printErr != nil {
		return h, fmt.Errorf("printing header: %w", printErr)
	}

	if err := CopyPayload(io.Discard, r, h.DataSize); err != nil {
		return h, err
	}

	var extra [1]byte

	n, err := io.ReadFull(r, extra[:])
	if n > 0 {
		return h, wav.ErrTrailingData
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return h, fmt.Errorf("checking end of stream: %w", err)
	}

	return h, nil
}
