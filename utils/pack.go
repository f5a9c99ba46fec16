// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-value conversion helpers shared by the
// waveform generator.
package utils

import "encoding/binary"

// ClampInt64 limits v to the inclusive range [lo, hi].
func ClampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PutPCM8 packs v as one unsigned 8-bit PCM sample. The caller must clamp
// v to [0, 255] first.
func PutPCM8(dst []byte, v int64) {
	dst[0] = byte(v)
}

// PutPCM16 packs v as one signed little-endian 16-bit PCM sample. The
// caller must clamp v to [-32768, 32767] first.
func PutPCM16(dst []byte, v int64) {
	binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
}
