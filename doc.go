// SPDX-License-Identifier: EPL-2.0

// Package wavkit writes, parses and generates RIFF WAVE PCM audio files.
//
// The heavy lifting lives in two subpackages; this package adds the
// convenience layer that ties them together.
//
// # Subpackages
//
//   - wav: the container codec. Parses and serializes the canonical
//     44-byte header, validates field mutations, and appends sample data
//     incrementally while keeping every size counter consistent.
//   - gen: the waveform generator. Produces silence, sine, bouncing
//     sawtooth and uniform-noise sample blocks packed for the configured
//     bit depth and channel count.
//
// # Quick Start
//
// Write two seconds of a 440 Hz tone with one call:
//
//	err := wavkit.Generate("tone.wav", gen.Sinus, 2, 440)
//
// Or drive the codec directly for full control:
//
//	f, _ := wav.New("out.wav")
//	f.SetSampleRate(44100)
//	f.SetNumChannels(1)
//
//	g := gen.New(f)
//	for range 44100 {
//	    g.PushSawSampleBlock()
//	}
//	if err := f.Write(); err != nil {
//	    // Handle error
//	}
//
// # Incremental Writing
//
// The codec appends: each Write call flushes the staged sample bytes to
// the end of the file and patches the header's two size fields in place.
// Nothing is ever re-read or rewritten, so arbitrarily long files can be
// produced in bounded memory by alternating pushes and writes.
//
// # Reading Back
//
// ReadFile decodes a whole file into a go-audio IntBuffer through the
// independent github.com/go-audio/wav decoder:
//
//	buf, err := wavkit.ReadFile("tone.wav")
//	// buf.Data holds interleaved samples,
//	// buf.Format the channel count and sample rate
//
// See the wav and gen package documentation for the full API.
package wavkit
