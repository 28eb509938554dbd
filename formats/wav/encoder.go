// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// Bytes serializes the header to its canonical little-endian layout.
func (h Header) Bytes() [HeaderSize]byte {
	var header [HeaderSize]byte

	// RIFF header (12 bytes)
	copy(header[offRIFFTag:], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[offRIFFSize:], h.RIFFSize)
	copy(header[offWAVETag:], riff.WavFormatID[:])

	// fmt chunk (24 bytes)
	copy(header[offFmtTag:], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[offFmtChunkSize:], h.FmtChunkSize)
	binary.LittleEndian.PutUint16(header[offFormatTag:], h.FormatTag)
	binary.LittleEndian.PutUint16(header[offChannels:], h.Channels)
	binary.LittleEndian.PutUint32(header[offSampleRate:], h.SampleRate)
	binary.LittleEndian.PutUint32(header[offByteRate:], h.ByteRate)
	binary.LittleEndian.PutUint16(header[offBlockAlign:], h.BlockAlign)
	binary.LittleEndian.PutUint16(header[offBitsPerSample:], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[offDataTag:], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[offDataSize:], h.DataSize)

	return header
}

// WriteTo writes the serialized header to w in one call.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	header := h.Bytes()

	n, err := w.Write(header[:])
	if err != nil {
		return int64(n), fmt.Errorf("writing header: %w", err)
	}

	return int64(n), nil
}

// WriteSamples packs buf.Data little-endian at buf.SourceBitDepth bits
// per sample: 8-bit values are stored unsigned, 16-bit values signed.
// When buf.Format names a channel count, Data must hold whole frames.
func WriteSamples(w io.Writer, buf *goaudio.IntBuffer) error {
	if buf == nil {
		return nil
	}

	if buf.SourceBitDepth != 8 && buf.SourceBitDepth != 16 {
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBuffer, buf.SourceBitDepth)
	}

	if buf.Format != nil && buf.Format.NumChannels > 0 && len(buf.Data)%buf.Format.NumChannels != 0 {
		return fmt.Errorf("%w: %d samples split across %d channels",
			ErrUnsupportedBuffer, len(buf.Data), buf.Format.NumChannels)
	}

	if len(buf.Data) == 0 {
		return nil
	}

	const chunkSize = 8192

	width := buf.SourceBitDepth / 8
	out := make([]byte, min(len(buf.Data), chunkSize)*width)

	for i := 0; i < len(buf.Data); i += chunkSize {
		chunk := buf.Data[i:min(i+chunkSize, len(buf.Data))]
		b := out[:len(chunk)*width]

		if width == 1 {
			for j, v := range chunk {
				b[j] = uint8(v)
			}
		} else {
			for j, v := range chunk {
				binary.LittleEndian.PutUint16(b[2*j:], uint16(int16(v)))
			}
		}

		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}
