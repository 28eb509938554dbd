// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// ReadHeader reads exactly HeaderSize bytes from r and validates them.
// visit, when not nil, receives each field as it is decoded; fields after
// a failed check are not reported.
func ReadHeader(r io.Reader, visit FieldFunc) (Header, error) {
	var buf [HeaderSize]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("reading header: %w", ErrTruncated)
		}

		return Header{}, fmt.Errorf("reading header: %w", err)
	}

	return ParseHeader(buf, visit)
}

// ParseHeader decodes and validates a canonical header. Checks run in the
// order of the Check constants and the first failure is returned as a
// *FormatError.
func ParseHeader(buf [HeaderSize]byte, visit FieldFunc) (Header, error) {
	if visit == nil {
		visit = func(string, uint32) {}
	}

	u16 := func(off int) uint16 { return binary.LittleEndian.Uint16(buf[off : off+2]) }
	u32 := func(off int) uint32 { return binary.LittleEndian.Uint32(buf[off : off+4]) }
	tag := func(off int) [4]byte { return [4]byte(buf[off : off+4]) }

	var h Header

	if tag(offRIFFTag) != riff.RiffID {
		return h, &FormatError{Check: CheckRIFFTag}
	}

	h.RIFFSize = u32(offRIFFSize)
	visit(FieldRIFFSize, h.RIFFSize)

	if tag(offWAVETag) != riff.WavFormatID {
		return h, &FormatError{Check: CheckWAVETag}
	}

	if tag(offFmtTag) != riff.FmtID {
		return h, &FormatError{Check: CheckFmtTag}
	}

	h.FmtChunkSize = u32(offFmtChunkSize)
	visit(FieldFmtChunkSize, h.FmtChunkSize)

	if h.FmtChunkSize != pcmFmtChunkSize {
		return h, &FormatError{Check: CheckFmtChunkSize}
	}

	h.FormatTag = u16(offFormatTag)
	visit(FieldFormatTag, uint32(h.FormatTag))

	if h.FormatTag != pcmFormatTag {
		return h, &FormatError{Check: CheckFormatTag}
	}

	h.Channels = u16(offChannels)
	visit(FieldChannels, uint32(h.Channels))

	if h.Channels != 1 && h.Channels != 2 {
		return h, &FormatError{Check: CheckChannels}
	}

	h.SampleRate = u32(offSampleRate)
	visit(FieldSampleRate, h.SampleRate)

	h.ByteRate = u32(offByteRate)
	visit(FieldByteRate, h.ByteRate)

	h.BlockAlign = u16(offBlockAlign)
	visit(FieldBlockAlign, uint32(h.BlockAlign))

	h.BitsPerSample = u16(offBitsPerSample)
	visit(FieldBitsPerSample, uint32(h.BitsPerSample))

	if h.BitsPerSample != 8 && h.BitsPerSample != 16 {
		return h, &FormatError{Check: CheckBitsPerSample}
	}

	// The product wraps at 32 bits, matching the stored field width.
	if h.ByteRate != h.SampleRate*uint32(h.BlockAlign) {
		return h, &FormatError{Check: CheckByteRate}
	}

	if h.BlockAlign != (h.BitsPerSample/8)*h.Channels {
		return h, &FormatError{Check: CheckBlockAlign}
	}

	if tag(offDataTag) != riff.DataFormatID {
		return h, &FormatError{Check: CheckDataTag}
	}

	h.DataSize = u32(offDataSize)
	visit(FieldDataSize, h.DataSize)

	return h, nil
}
