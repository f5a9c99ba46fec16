package wavkit

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavkit/gen"
	"github.com/ik5/wavkit/wav"
)

// flushEvery is how many sample blocks Generate stages between Write
// calls, keeping memory bounded regardless of the requested length.
const flushEvery = 4096

// Generate is a high-level convenience function that writes seconds of the
// given waveform to path using the File's default header settings
// (48 kHz, 16-bit, stereo, PCM).
//
// It streams incrementally: sample blocks are staged one at a time and
// flushed to disk every few thousand blocks, so generating hours of audio
// never holds more than a flush window in memory. freq is only used by the
// sine waveform.
//
// Example:
//
//	err := wavkit.Generate("tone.wav", gen.Sinus, 2.5, 440)
//	if err != nil {
//	    panic(err)
//	}
func Generate(path string, kind gen.Waveform, seconds, freq float64) error {
	f, err := wav.New(path)
	if err != nil {
		return err
	}

	g := gen.New(f)
	if err := g.SetType(kind); err != nil {
		return err
	}

	var total uint64
	if seconds > 0 {
		total = uint64(seconds * float64(f.SampleRate()))
	}

	for i := uint64(0); i < total; i++ {
		if err := g.PushBlock(freq); err != nil {
			return err
		}

		if (i+1)%flushEvery == 0 {
			if err := f.Write(); err != nil {
				return err
			}
		}
	}

	return f.Write()
}

// ReadFile decodes a whole WAV file into an audio.IntBuffer using the
// go-audio decoder. It is an independent read path: wavkit's own writer
// never feeds it, which makes it a useful cross-check of written output.
func ReadFile(path string) (*audio.IntBuffer, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer in.Close()

	dec := gowav.NewDecoder(in)
	if !dec.IsValidFile() {
		return nil, wav.ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}
