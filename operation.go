// SPDX-License-Identifier: EPL-2.0

package wavpipe

import (
	"io"

	"github.com/ik5/wavpipe/audio"
)

// Operation is one of Info, Rate, Channel, Volume or Generate. The set is
// closed; values are built by ParseArgs or directly by callers.
type Operation interface {
	// Name is the command word that selects the operation.
	Name() string

	run(in io.Reader, out io.Writer) error
}

// Info validates the input and prints its header fields to the output.
type Info struct{}

// Rate multiplies the sample rate metadata by Factor.
type Rate struct {
	Factor float64
}

// Channel keeps one channel of a stereo input.
type Channel struct {
	Keep audio.Channel
}

// Volume multiplies every sample by Factor.
type Volume struct {
	Factor float64
}

// Generate synthesizes Tone; no input is read.
type Generate struct {
	Tone audio.Tone
}

func (Info) Name() string     { return "info" }
func (Rate) Name() string     { return "rate" }
func (Channel) Name() string  { return "channel" }
func (Volume) Name() string   { return "volume" }
func (Generate) Name() string { return "generate" }

func (Info) run(in io.Reader, out io.Writer) error {
	_, err := audio.Inspect(in, out)
	return err
}

func (o Rate) run(in io.Reader, out io.Writer) error {
	return audio.RewriteRate(out, in, o.Factor)
}

func (o Channel) run(in io.Reader, out io.Writer) error {
	return audio.SelectChannel(out, in, o.Keep)
}

func (o Volume) run(in io.Reader, out io.Writer) error {
	return audio.ScaleVolume(out, in, o.Factor)
}

func (o Generate) run(_ io.Reader, out io.Writer) error {
	return audio.Synthesize(out, o.Tone)
}
