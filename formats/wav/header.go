// SPDX-License-Identifier: EPL-2.0

package wav

import (
	goaudio "github.com/go-audio/audio"
)

// HeaderSize is the length of the canonical RIFF/WAVE header:
// a 12 byte RIFF chunk, a 24 byte fmt chunk and the 8 byte data chunk header.
const HeaderSize = 44

// Byte offsets of the header fields.
const (
	offRIFFTag       = 0
	offRIFFSize      = 4
	offWAVETag       = 8
	offFmtTag        = 12
	offFmtChunkSize  = 16
	offFormatTag     = 20
	offChannels      = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offDataTag       = 36
	offDataSize      = 40
)

// Field labels passed to a FieldFunc, in the order they are decoded.
const (
	FieldRIFFSize      = "size of file"
	FieldFmtChunkSize  = "size of format chunk"
	FieldFormatTag     = "WAVE type format"
	FieldChannels      = "mono/stereo"
	FieldSampleRate    = "sample rate"
	FieldByteRate      = "bytes/sec"
	FieldBlockAlign    = "block alignment"
	FieldBitsPerSample = "bits/sample"
	FieldDataSize      = "size of data chunk"
)

const (
	pcmFormatTag    = 1
	pcmFmtChunkSize = 16
)

// FieldFunc observes header fields as they are decoded.
type FieldFunc func(name string, value uint32)

// Header is the canonical 44 byte PCM WAV header.
type Header struct {
	RIFFSize      uint32
	FmtChunkSize  uint32
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewMono16Header returns a self-consistent header for numSamples mono
// 16-bit samples at sampleRate.
func NewMono16Header(sampleRate, numSamples uint32) Header {
	dataSize := numSamples * 2

	return Header{
		RIFFSize:      36 + dataSize,
		FmtChunkSize:  pcmFmtChunkSize,
		FormatTag:     pcmFormatTag,
		Channels:      1,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		DataSize:      dataSize,
	}
}

// BytesPerSample is the size of one channel's sample.
func (h Header) BytesPerSample() int { return int(h.BitsPerSample / 8) }

// Format describes the stream in go-audio terms.
func (h Header) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(h.Channels),
		SampleRate:  int(h.SampleRate),
	}
}
