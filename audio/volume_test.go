// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"math"
	"testing"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavpipe/formats/wav"
	"github.com/ik5/wavpipe/internal/audiotest"
	"github.com/stretchr/testify/require"
)

func scaleVolume(t *testing.T, input []byte, factor float64) []byte {
	t.Helper()

	out := new(bytes.Buffer)
	require.NoError(t, ScaleVolume(out, bytes.NewReader(input), factor))

	return out.Bytes()
}

func TestScaleVolume_UnityIsIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{"16-bit mono", audiotest.NewWAV(8000, 1, 16, audiotest.Sine16(8000, 8000, 440, 32767))},
		{"16-bit stereo", audiotest.NewWAV(8000, 2, 16, audiotest.Frames16(1000, 2, stereoWaveform))},
		{"8-bit", audiotest.NewWAV(8000, 1, 8, audiotest.Ramp8(1000, 0))},
		{"extremes", audiotest.NewWAV(8000, 1, 16, audiotest.PCM16(math.MinInt16, math.MaxInt16, 0, -1, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.input, scaleVolume(t, tt.input, 1.0))
		})
	}
}

func TestScaleVolume_16Bit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []int16
		factor float64
		want   []int16
	}{
		{"double clamps at max", []int16{32767, 16384, 100}, 2.0, []int16{32767, 32767, 200}},
		{"double clamps at min", []int16{-32768, -16385, -100}, 2.0, []int16{-32768, -32768, -200}},
		{"half ties away from zero", []int16{3, -3, 1, -1}, 0.5, []int16{2, -2, 1, -1}},
		{"zero", []int16{1000, -1000}, 0, []int16{0, 0}},
		{"negative inverts", []int16{100, -100, -32768}, -1, []int16{-100, 100, 32767}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := audiotest.NewWAV(8000, 1, 16, audiotest.PCM16(tt.input...))
			out := scaleVolume(t, input, tt.factor)

			require.Equal(t, input[:wav.HeaderSize], out[:wav.HeaderSize])
			require.Equal(t, tt.want, audiotest.Samples16(out[wav.HeaderSize:]))
		})
	}
}

func TestScaleVolume_8Bit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []byte
		factor float64
		want   []byte
	}{
		{"double clamps at 255", []byte{200, 127, 128, 0}, 2.0, []byte{255, 254, 255, 0}},
		{"half rounds up", []byte{3, 1, 255}, 0.5, []byte{2, 1, 128}},
		{"negative clamps at 0", []byte{10, 200}, -1, []byte{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := audiotest.NewWAV(8000, 1, 8, tt.input)
			out := scaleVolume(t, input, tt.factor)

			require.Equal(t, tt.want, out[wav.HeaderSize:])
		})
	}
}

func TestScaleVolume_TrailingBytesUnchanged(t *testing.T) {
	t.Parallel()

	h := audiotest.NewHeader(8000, 1, 16, 5)
	input := audiotest.NewStream(h, []byte{10, 0, 20, 0, 0x7F}, 0x40, 0x41)

	out := scaleVolume(t, input, 2)

	want := audiotest.NewStream(h, []byte{20, 0, 40, 0, 0x7F}, 0x40, 0x41)
	require.Equal(t, want, out)
}

func TestScaleVolume_Truncated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   wav.Header
		payload  []byte
		wantData []byte
	}{
		{"16-bit empty", audiotest.NewHeader(8000, 1, 16, 4), nil, nil},
		{"16-bit half sample", audiotest.NewHeader(8000, 1, 16, 4), []byte{1, 0, 2}, []byte{2, 0}},
		{"8-bit", audiotest.NewHeader(8000, 1, 8, 10), []byte{1, 2, 3}, []byte{2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := new(bytes.Buffer)
			err := ScaleVolume(out, bytes.NewReader(audiotest.NewStream(tt.header, tt.payload)), 2)
			require.ErrorIs(t, err, wav.ErrTruncated)

			// The header and every whole sample read are already written.
			written := out.Bytes()
			require.GreaterOrEqual(t, len(written), wav.HeaderSize)
			require.Equal(t, len(tt.wantData), len(written)-wav.HeaderSize)
			require.True(t, bytes.Equal(tt.wantData, written[wav.HeaderSize:]))
		})
	}
}

func TestScaleVolume_AcrossBlocks(t *testing.T) {
	t.Parallel()

	const n = 3*volumeBlockSize/2 + 7
	samples := make([]int16, n)
	want := make([]int16, n)

	for i := range samples {
		samples[i] = int16(i - n/2)
		want[i] = int16(3 * (i - n/2))
	}

	out := scaleVolume(t, audiotest.NewWAV(8000, 1, 16, audiotest.PCM16(samples...)), 3)
	require.Equal(t, want, audiotest.Samples16(out[wav.HeaderSize:]))
}

func TestScaleVolume_DecodesWithGoAudio(t *testing.T) {
	t.Parallel()

	input := audiotest.NewWAV(16000, 2, 16, audiotest.PCM16(1000, -1000, 2000, -2000))
	out := scaleVolume(t, input, 0.25)

	dec := gowav.NewDecoder(bytes.NewReader(out))
	require.True(t, dec.IsValidFile())

	pcm, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	require.Equal(t, 2, pcm.Format.NumChannels)
	require.Equal(t, []int{250, -250, 500, -500}, pcm.Data)
}

func TestScaleVolume_InvalidHeader(t *testing.T) {
	t.Parallel()

	h := audiotest.NewHeader(8000, 1, 16, 0)
	h.BitsPerSample = 24

	out := new(bytes.Buffer)
	err := ScaleVolume(out, bytes.NewReader(audiotest.NewStream(h, nil)), 2)

	var ferr *wav.FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, wav.CheckBitsPerSample, ferr.Check)
	require.Zero(t, out.Len())
}

func TestScaleVolume_SampleWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broken pipe")
	input := audiotest.NewWAV(8000, 1, 16, audiotest.PCM16(1, 2, 3))

	err := ScaleVolume(&shortWriter{limit: wav.HeaderSize, err: boom}, bytes.NewReader(input), 2)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "writing samples")
}

func BenchmarkScaleVolume(b *testing.B) {
	input := audiotest.NewWAV(44100, 1, 16, audiotest.Sine16(44100, 44100, 440, 20000))
	out := new(bytes.Buffer)

	b.ReportAllocs()

	for b.Loop() {
		out.Reset()
		_ = ScaleVolume(out, bytes.NewReader(input), 0.8)
	}
}
