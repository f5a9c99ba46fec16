// SPDX-License-Identifier: EPL-2.0

// Package gen generates waveform sample blocks (silence, sine, bouncing
// sawtooth and uniform noise) packed for the bit depth and channel layout
// of a wav.File, and feeds them through the File's append path.
//
//	f, _ := wav.New("tone.wav")
//	g := gen.New(f)
//	for range f.SampleRate() {
//	    if err := g.PushSinSampleBlock(440); err != nil {
//	        // Handle error
//	    }
//	}
//	if err := f.Write(); err != nil {
//	    // Handle error
//	}
//
// Each push call produces exactly one interleaved sample block: one value
// per channel. Only 8-bit and 16-bit depths are implemented.
package gen
