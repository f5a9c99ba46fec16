// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds reference WAV byte blobs for tests, independent
// of the wav package's own serializer.
package wavtest

import (
	"bytes"
	"encoding/binary"
)

// HeaderParams configures a reference header build.
type HeaderParams struct {
	ChunkSize     uint32
	Format        uint16
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16
	DataSize      uint32
}

// Header builds a canonical 44-byte header from p, deriving the byte rate
// and block size from the primary fields.
func Header(p HeaderParams) []byte {
	buf := new(bytes.Buffer)

	byteRate := p.SampleRate * uint32(p.NumChannels) * uint32(p.BitsPerSample) / 8
	blockSize := p.NumChannels * p.BitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, p.ChunkSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, p.Format)
	binary.Write(buf, binary.LittleEndian, p.NumChannels)
	binary.Write(buf, binary.LittleEndian, p.SampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockSize)
	binary.Write(buf, binary.LittleEndian, p.BitsPerSample)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, p.DataSize)

	return buf.Bytes()
}

// PCM16File builds a complete little WAV file: header plus the given
// 16-bit samples, with consistent sizes.
func PCM16File(sampleRate uint32, channels uint16, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	header := Header(HeaderParams{
		ChunkSize:     36 + dataSize,
		Format:        1,
		NumChannels:   channels,
		SampleRate:    sampleRate,
		BitsPerSample: 16,
		DataSize:      dataSize,
	})

	buf := bytes.NewBuffer(header)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}
