// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ik5/wavkit/utils"
	"github.com/ik5/wavkit/wav"
)

// Waveform identifies the kind of signal a Generator produces.
type Waveform uint8

const (
	Silent Waveform = iota
	Sinus
	Saw
	Random
)

func (w Waveform) String() string {
	switch w {
	case Silent:
		return "silent"
	case Sinus:
		return "sinus"
	case Saw:
		return "saw"
	case Random:
		return "random"
	}
	return fmt.Sprintf("waveform(%d)", uint8(w))
}

// ParseWaveform maps a waveform name back to its Waveform value.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "silent":
		return Silent, nil
	case "sinus":
		return Sinus, nil
	case "saw":
		return Saw, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWaveform, name)
}

const (
	// sawAmplitude bounds the sawtooth accumulator to this fraction of
	// full scale before the slope sign flips.
	sawAmplitude = 0.8

	defaultSlopeOffset  = 440
	defaultMaxAmplitude = 0.25
)

// sampleRange is the value range of one sample at a given bit depth.
type sampleRange struct {
	min, zero, max int64
}

func rangeFor(bits uint16) (sampleRange, error) {
	switch bits {
	case 8:
		return sampleRange{min: 0, zero: 128, max: 255}, nil
	case 16:
		return sampleRange{min: math.MinInt16, zero: 0, max: math.MaxInt16}, nil
	}
	return sampleRange{}, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, bits)
}

// Generator produces waveform sample blocks in the byte layout configured
// on its wav.File and feeds them through File.PushSampleBlock. It keeps a
// cursor of its own (the sawtooth accumulator and slope) on top of the
// File's block counter.
//
// Only 8-bit and 16-bit depths are supported; every push operation fails
// with ErrUnsupportedBitDepth for other depths, without touching the File.
type Generator struct {
	file *wav.File
	kind Waveform

	current      int64
	slope        int64
	maxAmplitude float64
}

// New creates a Generator feeding f, producing silence until SetType is
// called, with the default amplitude fraction of 0.25 and sawtooth slope
// of 440.
func New(f *wav.File) *Generator {
	return &Generator{
		file:         f,
		slope:        defaultSlopeOffset,
		maxAmplitude: defaultMaxAmplitude,
	}
}

// Type returns the configured waveform kind. The kind is informational:
// each push operation produces its own waveform regardless, and PushBlock
// dispatches on it.
func (g *Generator) Type() Waveform { return g.kind }

// SetType configures the waveform kind used by PushBlock.
func (g *Generator) SetType(kind Waveform) error {
	switch kind {
	case Silent, Sinus, Saw, Random:
		g.kind = kind
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidWaveform, kind)
}

// SetMaxAmplitude limits generated amplitude to a fraction of full scale.
func (g *Generator) SetMaxAmplitude(fraction float64) error {
	if fraction <= 0 || fraction > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidAmplitude, fraction)
	}
	g.maxAmplitude = fraction
	return nil
}

// PushZeroSampleBlock appends one block of silence: the depth's zero value
// on every channel.
func (g *Generator) PushZeroSampleBlock() error {
	rng, err := rangeFor(g.file.BitsPerSample())
	if err != nil {
		return err
	}
	return g.pushSame(rng, rng.zero)
}

// PushSinSampleBlock appends one block of a sine wave at freq Hz. The
// sample index is the File's running block counter, so consecutive calls
// continue the same phase.
//
// The 16-bit path keeps the historical 8-bit scale: amplitude 128 about a
// 128 center, stored in the signed range. The 8-bit path scales by the
// configured amplitude fraction about the 128 center, clamped to [0, 255].
func (g *Generator) PushSinSampleBlock(freq float64) error {
	rng, err := rangeFor(g.file.BitsPerSample())
	if err != nil {
		return err
	}

	n := g.file.NumSampleBlocks()
	sin := math.Sin(2 * math.Pi * float64(n) * freq / float64(g.file.SampleRate()))

	var v int64
	switch g.file.BitsPerSample() {
	case 8:
		v = int64(math.Round(sin*g.maxAmplitude*128)) + rng.zero
		v = utils.ClampInt64(v, rng.min, rng.max)
	case 16:
		v = int64(math.Round(sin*128)) + 128
	}

	return g.pushSame(rng, v)
}

// PushRandomSampleBlock appends one block of uniform noise: every channel
// independently draws an integer in the amplitude-limited sample range,
// bounds inclusive.
func (g *Generator) PushRandomSampleBlock() error {
	rng, err := rangeFor(g.file.BitsPerSample())
	if err != nil {
		return err
	}

	lo := int64(math.Round(float64(rng.min) * g.maxAmplitude))
	hi := int64(math.Round(float64(rng.max) * g.maxAmplitude))

	values := make([]int64, g.file.NumChannels())
	for i := range values {
		values[i] = lo + rand.Int64N(hi-lo+1)
	}

	return g.pushValues(rng, values)
}

// PushSawSampleBlock appends one block of the bouncing sawtooth: a shared
// accumulator advances by the slope offset, and the slope sign flips
// whenever the accumulator leaves the central 80% of the sample range.
// Every channel carries the same value.
func (g *Generator) PushSawSampleBlock() error {
	rng, err := rangeFor(g.file.BitsPerSample())
	if err != nil {
		return err
	}

	g.current += g.slope
	if float64(g.current) > float64(rng.max)*sawAmplitude ||
		float64(g.current) < float64(rng.min)*sawAmplitude {
		g.slope = -g.slope
	}

	return g.pushSame(rng, g.current)
}

// PushBlock appends one block of the configured waveform kind. freq is
// only used by the sine waveform.
func (g *Generator) PushBlock(freq float64) error {
	switch g.kind {
	case Sinus:
		return g.PushSinSampleBlock(freq)
	case Saw:
		return g.PushSawSampleBlock()
	case Random:
		return g.PushRandomSampleBlock()
	}
	return g.PushZeroSampleBlock()
}

// pushSame packs v on every channel and appends the block.
func (g *Generator) pushSame(rng sampleRange, v int64) error {
	values := make([]int64, g.file.NumChannels())
	for i := range values {
		values[i] = v
	}
	return g.pushValues(rng, values)
}

// pushValues packs one clamped value per channel and appends the block.
func (g *Generator) pushValues(rng sampleRange, values []int64) error {
	sampleSize := int(g.file.BitsPerSample()) / 8
	block := make([]byte, len(values)*sampleSize)

	for i, v := range values {
		v = utils.ClampInt64(v, rng.min, rng.max)
		switch sampleSize {
		case 1:
			utils.PutPCM8(block[i:], v)
		case 2:
			utils.PutPCM16(block[i*2:], v)
		}
	}

	return g.file.PushSampleBlock(block)
}
