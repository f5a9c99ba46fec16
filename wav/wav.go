// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
)

// HeaderSize is the length in bytes of a canonical WAVE header:
// RIFF chunk header, "fmt " sub-chunk, and "data" sub-chunk header.
const HeaderSize = 44

// Audio format tags as stored in the "fmt " sub-chunk.
const (
	FormatPCM        uint16 = 0x0001
	FormatIEEEFloat  uint16 = 0x0003
	FormatALaw       uint16 = 0x0006
	FormatMuLaw      uint16 = 0x0007
	FormatExtensible uint16 = 0xFFFE
)

const (
	// headerChunkSize is the RIFF ChunkSize of a file with no sample data.
	headerChunkSize = 36
	// fmtChunkSize is the fixed "fmt " sub-chunk size for PCM.
	fmtChunkSize = 16
)

// Default header values used when no existing file is parsed.
const (
	DefaultSampleRate    uint32 = 48000
	DefaultBitsPerSample uint16 = 16
	DefaultNumChannels   uint16 = 2
)

var validSampleRates = []uint32{8000, 11025, 22050, 44100, 48000, 96000, 192000}

var validBitsPerSample = []uint16{8, 16, 24, 32}

var validFormats = []uint16{
	FormatPCM,
	FormatIEEEFloat,
	FormatALaw,
	FormatMuLaw,
	FormatExtensible,
}

const maxNumChannels = 6

// File holds the in-memory representation of a WAVE file: header fields,
// accumulated size counters, and sample bytes staged for the next Write.
type File struct {
	path string

	format           uint16
	numChannels      uint16
	sampleRate       uint32
	bitsPerSample    uint16
	chunkSize        uint32
	subChunkFmtSize  uint32
	subChunkDataSize uint32

	numSampleBlocks uint64
	numSamples      uint64
	duration        float64

	pending []byte
}

// New creates a File bound to path. When path names an existing file, the
// first 44 bytes are read and parsed; construction fails with ErrNotWavFile
// unless they start with the RIFF magic. When path is empty or names no
// file, the File starts with defaults: 48 kHz, 16-bit, stereo, PCM, no data.
func New(path string) (*File, error) {
	f := &File{
		path:            path,
		format:          FormatPCM,
		numChannels:     DefaultNumChannels,
		sampleRate:      DefaultSampleRate,
		bitsPerSample:   DefaultBitsPerSample,
		chunkSize:       headerChunkSize,
		subChunkFmtSize: fmtChunkSize,
	}

	if path == "" {
		return f, nil
	}

	in, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer in.Close()

	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(in, raw); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := f.parseHeader(raw); err != nil {
		return nil, err
	}

	return f, nil
}

// Path returns the bound target path, possibly empty.
func (f *File) Path() string { return f.path }

func (f *File) SampleRate() uint32 { return f.sampleRate }

func (f *File) BitsPerSample() uint16 { return f.bitsPerSample }

func (f *File) NumChannels() uint16 { return f.numChannels }

func (f *File) Format() uint16 { return f.format }

// ChunkSize returns the RIFF ChunkSize field: total file size minus 8.
func (f *File) ChunkSize() uint32 { return f.chunkSize }

// DataSize returns the accumulated "data" sub-chunk size in bytes.
func (f *File) DataSize() uint32 { return f.subChunkDataSize }

// NumSampleBlocks returns the count of per-channel-group sample blocks
// appended so far.
func (f *File) NumSampleBlocks() uint64 { return f.numSampleBlocks }

// NumSamples returns the count of individual samples across all channels.
func (f *File) NumSamples() uint64 { return f.numSamples }

// Duration returns the audio length in seconds, accumulated incrementally
// per append. It is not recomputed from the totals, so tiny floating point
// drift across many small appends is expected.
func (f *File) Duration() float64 { return f.duration }

// SetSampleRate sets the sample rate in Hz. Only 8000, 11025, 22050,
// 44100, 48000, 96000 and 192000 are accepted.
func (f *File) SetSampleRate(rate uint32) error {
	if !slices.Contains(validSampleRates, rate) {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, rate)
	}

	f.sampleRate = rate
	return nil
}

// SetBitsPerSample sets the sample depth. Only 8, 16, 24 and 32 are accepted.
func (f *File) SetBitsPerSample(bits uint16) error {
	if !slices.Contains(validBitsPerSample, bits) {
		return fmt.Errorf("%w: bits per sample %d", ErrInvalidArgument, bits)
	}

	f.bitsPerSample = bits
	return nil
}

// SetNumChannels sets the channel count, 1 through 6.
func (f *File) SetNumChannels(channels uint16) error {
	if channels < 1 || channels > maxNumChannels {
		return fmt.Errorf("%w: number of channels %d", ErrInvalidArgument, channels)
	}

	f.numChannels = channels
	return nil
}

// SetFormat sets the audio format tag. Only the tags declared in this
// package (PCM, IEEE float, A-law, mu-law, extensible) are accepted.
func (f *File) SetFormat(format uint16) error {
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("%w: audio format %#04x", ErrInvalidArgument, format)
	}

	f.format = format
	return nil
}

// ByteRate returns bytes of audio data per second of playback.
func (f *File) ByteRate() uint32 {
	return f.sampleRate * uint32(f.numChannels) * uint32(f.bitsPerSample) / 8
}

// SampleBlockSize returns the size in bytes of one interleaved sample
// block: one sample per channel.
func (f *File) SampleBlockSize() uint16 {
	return f.numChannels * f.bitsPerSample / 8
}

// ComputedDataSize derives the data size from the sample counters instead
// of the accumulated subchunk field, so callers can cross-check the two.
func (f *File) ComputedDataSize() uint64 {
	return f.numSamples * uint64(f.numChannels) * uint64(f.bitsPerSample) / 8
}
