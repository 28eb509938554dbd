// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader is wrapped by every FormatError.
	ErrInvalidHeader = errors.New("invalid WAV header")
	// ErrTruncated means the stream ended before a required byte count was read.
	ErrTruncated = errors.New("insufficient data")
	// ErrTrailingData means bytes were found past the declared end of the file.
	ErrTrailingData = errors.New("bad file size (found data past the expected end of file)")
	// ErrUnsupportedBuffer means a sample buffer cannot be packed as PCM.
	ErrUnsupportedBuffer = errors.New("unsupported sample buffer")
)

// Check identifies one header validation step. Checks run in declaration
// order and parsing stops at the first one that fails.
type Check int

const (
	CheckRIFFTag Check = iota + 1
	CheckWAVETag
	CheckFmtTag
	CheckFmtChunkSize
	CheckFormatTag
	CheckChannels
	CheckBitsPerSample
	CheckByteRate
	CheckBlockAlign
	CheckDataTag
)

func (c Check) String() string {
	switch c {
	case CheckRIFFTag:
		return `"RIFF" not found`
	case CheckWAVETag:
		return `"WAVE" not found`
	case CheckFmtTag:
		return `"fmt " not found`
	case CheckFmtChunkSize:
		return "size of format chunk should be 16"
	case CheckFormatTag:
		return "WAVE type format should be 1"
	case CheckChannels:
		return "mono/stereo should be 1 or 2"
	case CheckBitsPerSample:
		return "bits/sample should be 8 or 16"
	case CheckByteRate:
		return "bytes/second should be sample rate x block alignment"
	case CheckBlockAlign:
		return "block alignment should be bits per sample / 8 x mono/stereo"
	case CheckDataTag:
		return `"data" not found`
	default:
		return fmt.Sprintf("check(%d)", int(c))
	}
}

// FormatError reports the first header check that failed.
type FormatError struct {
	Check Check
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidHeader, e.Check)
}

func (e *FormatError) Unwrap() error { return ErrInvalidHeader }
