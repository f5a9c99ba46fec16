// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

// PushSampleBlock stages raw interleaved sample bytes and updates every
// size and duration counter. The length must be an exact multiple of
// SampleBlockSize; otherwise nothing changes and ErrInvalidBlockSize is
// returned. This is the single data mutation entry point: generators and
// callers alike feed sample bytes through here.
func (f *File) PushSampleBlock(data []byte) error {
	blockSize := int(f.SampleBlockSize())
	if blockSize == 0 || len(data)%blockSize != 0 {
		return fmt.Errorf("%w: got %d bytes, expected a multiple of %d",
			ErrInvalidBlockSize, len(data), blockSize)
	}

	// The two size fields are uint32; the RIFF chunk also counts 36
	// header bytes on top of the data.
	if uint64(f.subChunkDataSize)+uint64(len(data)) > math.MaxUint32-headerChunkSize {
		return fmt.Errorf("%w: %d pending + %d", ErrDataTooLarge, f.subChunkDataSize, len(data))
	}

	f.pending = append(f.pending, data...)

	blocks := uint64(len(data) / blockSize)
	f.chunkSize += uint32(len(data))
	f.subChunkDataSize += uint32(len(data))
	f.numSampleBlocks += blocks
	f.numSamples += blocks * uint64(f.numChannels)
	f.duration += float64(blocks) / float64(f.sampleRate)

	return nil
}

// Write persists the current state to the bound path with idempotent
// append semantics:
//
//  1. When no file exists yet, it is created and the 44-byte header is
//     written fresh. This is the only time the full header is written.
//  2. When sample bytes are pending, they are appended, the staging
//     buffer is cleared, and the header size fields are patched in place.
//  3. When the file exists and nothing is pending, Write is a no-op.
//
// Repeated PushSampleBlock + Write calls therefore stream arbitrarily
// large audio in bounded memory, never rewriting the file body. A failed
// size patch after a successful append is returned wrapped in ErrFinalize;
// the appended data is already on disk at that point.
func (f *File) Write() error {
	if f.path == "" {
		return ErrMissingTarget
	}

	_, err := os.Stat(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := f.writeHeader(); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("%w", err)
	}

	if len(f.pending) == 0 {
		return nil
	}

	if err := f.appendPending(); err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFinalize, err)
	}

	return nil
}

// Close finalizes the persisted header: it reopens the file read-write
// without truncation and patches the RIFF ChunkSize (offset 4) and the
// data sub-chunk size (offset 40) to their current values. It may be
// called independently of Write.
func (f *File) Close() error {
	if f.path == "" {
		return ErrMissingTarget
	}

	out, err := os.OpenFile(f.path, os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	var size [4]byte

	binary.LittleEndian.PutUint32(size[:], f.chunkSize)
	if _, err := out.WriteAt(size[:], offChunkSize); err != nil {
		return fmt.Errorf("%w", err)
	}

	binary.LittleEndian.PutUint32(size[:], f.subChunkDataSize)
	if _, err := out.WriteAt(size[:], offSubChunkDataSize); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (f *File) writeHeader() error {
	out, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	if _, err := out.Write(f.RawHeader()); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (f *File) appendPending() error {
	out, err := os.OpenFile(f.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	if _, err := out.Write(f.pending); err != nil {
		return fmt.Errorf("%w", err)
	}

	f.pending = f.pending[:0]
	return nil
}
