// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// Byte offsets of the header fields, per the canonical 44-byte layout.
const (
	offChunkID          = 0
	offChunkSize        = 4
	offFormat           = 8
	offSubChunkFmtID    = 12
	offSubChunkFmtSize  = 16
	offAudioFormat      = 20
	offNumChannels      = 22
	offSampleRate       = 24
	offByteRate         = 28
	offSampleBlockSize  = 32
	offBitsPerSample    = 34
	offSubChunkDataID   = 36
	offSubChunkDataSize = 40
)

// RawHeader serializes the current header state into the canonical 44-byte
// layout. Pure computation, no I/O.
func (f *File) RawHeader() []byte {
	header := make([]byte, HeaderSize)

	copy(header[offChunkID:], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[offChunkSize:], f.chunkSize)
	copy(header[offFormat:], riff.WavFormatID[:])

	copy(header[offSubChunkFmtID:], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[offSubChunkFmtSize:], f.subChunkFmtSize)
	binary.LittleEndian.PutUint16(header[offAudioFormat:], f.format)
	binary.LittleEndian.PutUint16(header[offNumChannels:], f.numChannels)
	binary.LittleEndian.PutUint32(header[offSampleRate:], f.sampleRate)
	binary.LittleEndian.PutUint32(header[offByteRate:], f.ByteRate())
	binary.LittleEndian.PutUint16(header[offSampleBlockSize:], f.SampleBlockSize())
	binary.LittleEndian.PutUint16(header[offBitsPerSample:], f.bitsPerSample)

	copy(header[offSubChunkDataID:], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[offSubChunkDataSize:], f.subChunkDataSize)

	return header
}

// parseHeader populates the field state from a raw 44-byte header. Only the
// RIFF magic is verified; everything else is taken as stored so that the
// diagnostics in DumpRawHeader can still inspect suspect files.
func (f *File) parseHeader(raw []byte) error {
	if len(raw) < HeaderSize {
		return fmt.Errorf("%w: header is %d bytes, need %d", ErrNotWavFile, len(raw), HeaderSize)
	}

	if !bytes.Equal(raw[offChunkID:offChunkID+4], riff.RiffID[:]) {
		return ErrNotWavFile
	}

	f.chunkSize = binary.LittleEndian.Uint32(raw[offChunkSize:])
	f.subChunkFmtSize = binary.LittleEndian.Uint32(raw[offSubChunkFmtSize:])
	f.format = binary.LittleEndian.Uint16(raw[offAudioFormat:])
	f.numChannels = binary.LittleEndian.Uint16(raw[offNumChannels:])
	f.sampleRate = binary.LittleEndian.Uint32(raw[offSampleRate:])
	f.bitsPerSample = binary.LittleEndian.Uint16(raw[offBitsPerSample:])
	f.subChunkDataSize = binary.LittleEndian.Uint32(raw[offSubChunkDataSize:])

	if blockSize := uint64(f.SampleBlockSize()); blockSize > 0 {
		f.numSampleBlocks = uint64(f.subChunkDataSize) / blockSize
	} else {
		f.numSampleBlocks = 0
	}
	f.numSamples = f.numSampleBlocks * uint64(f.numChannels)

	if f.sampleRate > 0 {
		f.duration = float64(f.numSampleBlocks) / float64(f.sampleRate)
	} else {
		f.duration = 0
	}

	return nil
}

// HeaderField is one decoded header entry from DumpRawHeader, in on-disk
// order.
type HeaderField struct {
	Key   string
	Value string
}

// DumpRawHeader re-reads the first 44 bytes from storage and decodes every
// field, plus the claimed total file size (ChunkSize+8) and the actual
// on-disk size for comparison. It reflects what is persisted, not the
// in-memory state. An unreadable or truncated file yields nil: this is a
// diagnostic path, not a correctness-critical one.
func (f *File) DumpRawHeader() []HeaderField {
	in, err := os.Open(f.path)
	if err != nil {
		return nil
	}
	defer in.Close()

	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(in, raw); err != nil {
		return nil
	}

	info, err := in.Stat()
	if err != nil {
		return nil
	}

	chunkSize := binary.LittleEndian.Uint32(raw[offChunkSize:])

	return []HeaderField{
		{"ChunkId", string(raw[offChunkID : offChunkID+4])},
		{"ChunkSize", fmt.Sprintf("%d", chunkSize)},
		{"Format", string(raw[offFormat : offFormat+4])},
		{"SubchunkFmtId", string(raw[offSubChunkFmtID : offSubChunkFmtID+4])},
		{"SubchunkFmtSize", fmt.Sprintf("%d", binary.LittleEndian.Uint32(raw[offSubChunkFmtSize:]))},
		{"AudioFormat", fmt.Sprintf("%d", binary.LittleEndian.Uint16(raw[offAudioFormat:]))},
		{"NumChannels", fmt.Sprintf("%d", binary.LittleEndian.Uint16(raw[offNumChannels:]))},
		{"SampleRate", fmt.Sprintf("%d", binary.LittleEndian.Uint32(raw[offSampleRate:]))},
		{"ByteRate", fmt.Sprintf("%d", binary.LittleEndian.Uint32(raw[offByteRate:]))},
		{"SampleBlockSize", fmt.Sprintf("%d", binary.LittleEndian.Uint16(raw[offSampleBlockSize:]))},
		{"BitsPerSample", fmt.Sprintf("%d", binary.LittleEndian.Uint16(raw[offBitsPerSample:]))},
		{"SubchunkDataId", string(raw[offSubChunkDataID : offSubChunkDataID+4])},
		{"SubchunkDataSize", fmt.Sprintf("%d", binary.LittleEndian.Uint32(raw[offSubChunkDataSize:]))},
		{"TotalSize", fmt.Sprintf("%d", uint64(chunkSize)+8)},
		{"FileSize", fmt.Sprintf("%d", info.Size())},
	}
}

// DisplayInfo writes the persisted header fields to w as aligned
// "Key : Value" lines. Nothing is written when the file is unreadable.
func (f *File) DisplayInfo(w io.Writer) {
	for _, field := range f.DumpRawHeader() {
		fmt.Fprintf(w, "%-16s : %s\n", field.Key, field.Value)
	}
}
