// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavpipe/formats/wav"
)

// Passthrough copies the rest of r to w unchanged and returns the number
// of bytes copied.
func Passthrough(w io.Writer, r io.Reader) (int64, error) {
	n, err := io.Copy(w, r)
	if err != nil {
		return n, fmt.Errorf("passthrough: %w", err)
	}

	return n, nil
}

// CopyPayload copies exactly n bytes from r to w. A short stream is
// reported as wav.ErrTruncated.
func CopyPayload(w io.Writer, r io.Reader, n uint32) error {
	copied, err := io.CopyN(w, r, int64(n))
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("payload: got %d of %d bytes: %w", copied, n, wav.ErrTruncated)
	}

	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}

	return nil
}
