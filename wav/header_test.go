// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/wavkit/internal/wavtest"
)

func TestRawHeader_MatchesReferenceLayout(t *testing.T) {
	t.Parallel()

	f, _ := New("")

	want := wavtest.Header(wavtest.HeaderParams{
		ChunkSize:     36,
		Format:        FormatPCM,
		NumChannels:   2,
		SampleRate:    48000,
		BitsPerSample: 16,
		DataSize:      0,
	})

	if got := f.RawHeader(); !bytes.Equal(got, want) {
		t.Errorf("RawHeader() =\n% x\nwant\n% x", got, want)
	}
}

func TestRawHeader_ReflectsPushes(t *testing.T) {
	t.Parallel()

	f, _ := New("")
	if err := f.PushSampleBlock(make([]byte, 12)); err != nil {
		t.Fatal(err)
	}

	want := wavtest.Header(wavtest.HeaderParams{
		ChunkSize:     48,
		Format:        FormatPCM,
		NumChannels:   2,
		SampleRate:    48000,
		BitsPerSample: 16,
		DataSize:      12,
	})

	if got := f.RawHeader(); !bytes.Equal(got, want) {
		t.Errorf("RawHeader() =\n% x\nwant\n% x", got, want)
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     uint32
		bits     uint16
		channels uint16
		format   uint16
	}{
		{"defaults", 48000, 16, 2, FormatPCM},
		{"8kHz mono A-law", 8000, 8, 1, FormatALaw},
		{"96kHz 5.1 24-bit float", 96000, 24, 6, FormatIEEEFloat},
		{"192kHz 32-bit extensible", 192000, 32, 4, FormatExtensible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, _ := New("")
			if err := f.SetSampleRate(tt.rate); err != nil {
				t.Fatal(err)
			}
			if err := f.SetBitsPerSample(tt.bits); err != nil {
				t.Fatal(err)
			}
			if err := f.SetNumChannels(tt.channels); err != nil {
				t.Fatal(err)
			}
			if err := f.SetFormat(tt.format); err != nil {
				t.Fatal(err)
			}

			path := writeTempFile(t, f.RawHeader())

			parsed, err := New(path)
			if err != nil {
				t.Fatalf("New() on serialized header error = %v", err)
			}

			if parsed.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", parsed.SampleRate(), tt.rate)
			}
			if parsed.BitsPerSample() != tt.bits {
				t.Errorf("BitsPerSample() = %d, want %d", parsed.BitsPerSample(), tt.bits)
			}
			if parsed.NumChannels() != tt.channels {
				t.Errorf("NumChannels() = %d, want %d", parsed.NumChannels(), tt.channels)
			}
			if parsed.Format() != tt.format {
				t.Errorf("Format() = %d, want %d", parsed.Format(), tt.format)
			}
		})
	}
}

func TestDumpRawHeader_Fields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dump.wav")
	f, _ := New(path)
	if err := f.PushSampleBlock(make([]byte, 8)); err != nil {
		t.Fatal(err)
	}
	if err := f.Write(); err != nil {
		t.Fatal(err)
	}

	fields := f.DumpRawHeader()
	if fields == nil {
		t.Fatal("DumpRawHeader() = nil, want fields")
	}

	get := func(key string) string {
		t.Helper()
		for _, field := range fields {
			if field.Key == key {
				return field.Value
			}
		}
		t.Fatalf("field %q missing", key)
		return ""
	}

	if got := get("ChunkId"); got != "RIFF" {
		t.Errorf("ChunkId = %q, want RIFF", got)
	}
	if got := get("Format"); got != "WAVE" {
		t.Errorf("Format = %q, want WAVE", got)
	}
	if got := get("SubchunkFmtId"); got != "fmt " {
		t.Errorf("SubchunkFmtId = %q, want \"fmt \"", got)
	}
	if got := get("SubchunkDataId"); got != "data" {
		t.Errorf("SubchunkDataId = %q, want data", got)
	}
	if got := get("ChunkSize"); got != "44" {
		t.Errorf("ChunkSize = %s, want 44", got)
	}
	if got := get("SubchunkDataSize"); got != "8" {
		t.Errorf("SubchunkDataSize = %s, want 8", got)
	}

	// Claimed and actual sizes agree for a well-formed file.
	if total, size := get("TotalSize"), get("FileSize"); total != "52" || size != "52" {
		t.Errorf("TotalSize = %s, FileSize = %s, want 52 and 52", total, size)
	}

	// On-disk order is preserved.
	if fields[0].Key != "ChunkId" || fields[len(fields)-1].Key != "FileSize" {
		t.Errorf("field order wrong: first %q last %q", fields[0].Key, fields[len(fields)-1].Key)
	}
}

func TestDumpRawHeader_UnreadableFile(t *testing.T) {
	t.Parallel()

	f, _ := New(filepath.Join(t.TempDir(), "missing.wav"))

	if fields := f.DumpRawHeader(); fields != nil {
		t.Errorf("DumpRawHeader() = %v, want nil for missing file", fields)
	}
}

func TestDumpRawHeader_TruncatedFile(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, []byte("RIFF"))
	f := &File{path: path}

	if fields := f.DumpRawHeader(); fields != nil {
		t.Errorf("DumpRawHeader() = %v, want nil for truncated file", fields)
	}
}

func TestDisplayInfo(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "info.wav")
	f, _ := New(path)
	if err := f.Write(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	f.DisplayInfo(&buf)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 15 {
		t.Fatalf("DisplayInfo() wrote %d lines, want 15:\n%s", len(lines), out)
	}

	if want := fmt.Sprintf("%-16s : %s", "ChunkId", "RIFF"); lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}

	for _, line := range lines {
		if !strings.Contains(line, " : ") {
			t.Errorf("line %q is not Key : Value formatted", line)
		}
	}
}

func TestDisplayInfo_UnreadableWritesNothing(t *testing.T) {
	t.Parallel()

	f, _ := New(filepath.Join(t.TempDir(), "missing.wav"))

	var buf bytes.Buffer
	f.DisplayInfo(&buf)

	if buf.Len() != 0 {
		t.Errorf("DisplayInfo() wrote %q for missing file, want nothing", buf.String())
	}
}
