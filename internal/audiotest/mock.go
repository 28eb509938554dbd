// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV byte streams for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/ik5/wavpipe/formats/wav"
)

// NewHeader returns a valid header for dataSize payload bytes.
func NewHeader(sampleRate uint32, channels, bitsPerSample uint16, dataSize uint32) wav.Header {
	blockAlign := (bitsPerSample / 8) * channels

	return wav.Header{
		RIFFSize:      36 + dataSize,
		FmtChunkSize:  16,
		FormatTag:     1,
		Channels:      channels,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		DataSize:      dataSize,
	}
}

// NewStream concatenates the serialized header, the payload and any
// trailing bytes.
func NewStream(h wav.Header, payload []byte, trailing ...byte) []byte {
	header := h.Bytes()

	buf := new(bytes.Buffer)
	buf.Write(header[:])
	buf.Write(payload)
	buf.Write(trailing)

	return buf.Bytes()
}

// NewWAV builds a complete stream whose data size matches the payload.
func NewWAV(sampleRate uint32, channels, bitsPerSample uint16, payload []byte) []byte {
	return NewStream(NewHeader(sampleRate, channels, bitsPerSample, uint32(len(payload))), payload)
}

// PCM16 packs samples as little-endian 16-bit values.
func PCM16(samples ...int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}

	return buf
}

// Frames16 generates interleaved 16-bit frames.
// waveform is a function that generates sample values given frame index and channel.
func Frames16(frames, channels int, waveform func(frame int, channel int) int16) []byte {
	samples := make([]int16, 0, frames*channels)
	for f := range frames {
		for ch := range channels {
			samples = append(samples, waveform(f, ch))
		}
	}

	return PCM16(samples...)
}

// Sine16 generates mono 16-bit sine frames at the given frequency and peak.
func Sine16(sampleRate, frames int, frequency, peak float64) []byte {
	return Frames16(frames, 1, func(frame int, _ int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(peak * math.Sin(2*math.Pi*frequency*t))
	})
}

// Ramp8 generates n 8-bit samples counting up from start, wrapping at 256.
func Ramp8(n int, start byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = start + byte(i)
	}

	return buf
}

// Samples16 unpacks little-endian 16-bit values. A trailing odd byte is ignored.
func Samples16(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}

	return out
}
