// SPDX-License-Identifier: EPL-2.0

// Package wav parses, validates and incrementally writes RIFF WAVE PCM
// files with a canonical 44-byte header.
//
// The central type is File: it owns the header field state, the accumulated
// size counters, and a staging buffer of sample bytes not yet flushed to
// disk.
//
// # Creating and configuring
//
// New binds a File to a path. When the path names an existing file, its
// header is parsed and the counters are derived from it; otherwise the
// File starts with defaults (48 kHz, 16-bit, stereo, PCM):
//
//	f, err := wav.New("out.wav")
//	if err != nil {
//	    // Handle error
//	}
//	f.SetSampleRate(44100)
//	f.SetNumChannels(1)
//
// Setters validate against the legal value sets and leave the field
// untouched on rejection:
//
//	if err := f.SetBitsPerSample(12); err != nil {
//	    // errors.Is(err, wav.ErrInvalidArgument) == true
//	}
//
// # Appending sample data
//
// PushSampleBlock stages raw interleaved sample bytes; Write appends all
// staged bytes to the file and patches the header size fields in place.
// The loop below streams audio of any length in bounded memory:
//
//	for _, block := range blocks {
//	    if err := f.PushSampleBlock(block); err != nil {
//	        // Handle error
//	    }
//	    if err := f.Write(); err != nil {
//	        // Handle error
//	    }
//	}
//
// Write never rewrites the file body. The header is written once, on file
// creation; afterwards only the two size fields at offsets 4 and 40 are
// patched. Close performs that patch independently.
//
// # Diagnostics
//
// DumpRawHeader re-reads the persisted header and decodes every field,
// alongside the claimed and actual file sizes, so a mismatch between
// memory and disk is visible. DisplayInfo renders it as aligned
// "Key : Value" lines.
//
// # Error Handling
//
// The package defines sentinel errors for every failure class:
//   - ErrNotWavFile: the file does not start with the RIFF magic
//   - ErrInvalidArgument: a setter value outside its legal set
//   - ErrInvalidBlockSize: appended data not a multiple of the block size
//   - ErrDataTooLarge: growth past the uint32 size fields
//   - ErrMissingTarget: Write or Close with no bound path
//   - ErrFinalize: data appended but the size patch failed
//
// All validation happens before any state changes; a failed call mutates
// nothing.
package wav
