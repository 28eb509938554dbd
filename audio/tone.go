// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavpipe/formats/wav"
	"github.com/ik5/wavpipe/utils"
)

// Tone describes a phase-modulated sinusoid:
//
//	s(n) = Amplitude * sin(2π·CarrierFreq·t − ModIndex·sin(2π·ModFreq·t)), t = n/SampleRate
type Tone struct {
	Duration    int // seconds
	SampleRate  int
	ModFreq     float64
	CarrierFreq float64
	ModIndex    float64
	Amplitude   float64
}

// DefaultTone is three seconds of a 1500 Hz carrier swept at 2 Hz.
func DefaultTone() Tone {
	return Tone{
		Duration:    3,
		SampleRate:  44100,
		ModFreq:     2.0,
		CarrierFreq: 1500.0,
		ModIndex:    100.0,
		Amplitude:   30000.0,
	}
}

// toneBlockFrames is how many samples are rendered per write.
const toneBlockFrames = 4096

// maxToneSamples keeps the RIFF size of a mono 16-bit stream within 32 bits.
const maxToneSamples = (math.MaxUint32 - 36) / 2

// NumSamples is Duration * SampleRate.
func (t Tone) NumSamples() int64 {
	return int64(t.Duration) * int64(t.SampleRate)
}

// Validate reports parameters that cannot produce a well-formed stream.
func (t Tone) Validate() error {
	switch {
	case t.Duration < 0:
		return fmt.Errorf("%w: duration %d is negative", ErrInvalidTone, t.Duration)
	case t.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d is not positive", ErrInvalidTone, t.SampleRate)
	case int64(t.SampleRate) > math.MaxUint32/2:
		return fmt.Errorf("%w: sample rate %d: %w", ErrInvalidTone, t.SampleRate, utils.ErrOutOfRange)
	case t.NumSamples() > maxToneSamples:
		return fmt.Errorf("%w: %d samples: %w", ErrInvalidTone, t.NumSamples(), utils.ErrOutOfRange)
	}

	for _, v := range []float64{t.ModFreq, t.CarrierFreq, t.ModIndex, t.Amplitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v is not finite", ErrInvalidTone, v)
		}
	}

	return nil
}

// Header returns the header of the synthesized stream.
func (t Tone) Header() wav.Header {
	return wav.NewMono16Header(uint32(t.SampleRate), uint32(t.NumSamples()))
}

// Sample computes sample n, clamped and rounded to int16.
func (t Tone) Sample(n int64) int16 {
	tm := float64(n) / float64(t.SampleRate)
	v := t.Amplitude * math.Sin(2*math.Pi*t.CarrierFreq*tm-t.ModIndex*math.Sin(2*math.Pi*t.ModFreq*tm))

	return utils.ClampRoundInt16(v)
}

// render fills buf with the samples starting at first.
func (t Tone) render(buf *goaudio.IntBuffer, first int64) {
	for i := range buf.Data {
		buf.Data[i] = int(t.Sample(first + int64(i)))
	}
}

// Synthesize writes the header and samples of t to w. No input is read.
func Synthesize(w io.Writer, t Tone) error {
	if err := t.Validate(); err != nil {
		return err
	}

	h := t.Header()
	if _, err := h.WriteTo(w); err != nil {
		return err
	}

	buf := &goaudio.IntBuffer{
		Format:         h.Format(),
		SourceBitDepth: int(h.BitsPerSample),
		Data:           make([]int, toneBlockFrames),
	}

	total := t.NumSamples()
	for first := int64(0); first < total; first += toneBlockFrames {
		n := int(min(toneBlockFrames, total-first))
		buf.Data = buf.Data[:n]
		t.render(buf, first)

		if err := wav.WriteSamples(w, buf); err != nil {
			return fmt.Errorf("tone samples at %d: %w", first, err)
		}
	}

	return nil
}
