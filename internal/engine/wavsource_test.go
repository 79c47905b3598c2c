package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writePCM writes raw integer PCM to a WAV file.
func writePCM(t *testing.T, path string, data []int, rate, channels, bitDepth int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	enc := wav.NewEncoder(f, rate, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: bitDepth,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing PCM: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}
}

func openSource(t *testing.T, path string) (*WAVSource, *os.File) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	src, err := NewWAVSource(wav.NewDecoder(f))
	if err != nil {
		_ = f.Close()
		t.Fatalf("NewWAVSource: %v", err)
	}
	return src, f
}

func TestWAVSource_ReadsAllSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	pcm := []int{0, 100, -100, 16384, 32767, -32767}
	writePCM(t, path, pcm, 8000, 1, 16)

	src, f := openSource(t, path)
	defer func() { _ = f.Close() }()

	if src.Channels() != 1 || src.SampleRate() != 8000 || src.BitDepth() != 16 {
		t.Fatalf("format = %d channels, %d Hz, %d-bit, want 1 channel, 8000 Hz, 16-bit",
			src.Channels(), src.SampleRate(), src.BitDepth())
	}

	want := make([]float64, len(pcm))
	if err := PCMToFloat(want, pcm, 16); err != nil {
		t.Fatalf("PCMToFloat: %v", err)
	}

	dst := make([]float64, 4)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("first read: n = %d, err = %v, want 4, nil", n, err)
	}
	for i := range 4 {
		if dst[i] != want[i] {
			t.Errorf("sample %d: got %g, want %g", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if err != nil || n != 2 {
		t.Fatalf("second read: n = %d, err = %v, want 2, nil", n, err)
	}
	for i := range 2 {
		if dst[i] != want[4+i] {
			t.Errorf("sample %d: got %g, want %g", 4+i, dst[i], want[4+i])
		}
	}

	// Exhausted sources keep reporting (0, nil).
	for range 2 {
		if n, err = src.ReadSamples(dst); n != 0 || err != nil {
			t.Fatalf("read past end: n = %d, err = %v, want 0, nil", n, err)
		}
	}
}

func TestWAVSource_Stereo24Bit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo24.wav")
	pcm := []int{8388607, -8388607, 0, 4194304}
	writePCM(t, path, pcm, 44100, 2, 24)

	src, f := openSource(t, path)
	defer func() { _ = f.Close() }()

	if src.Channels() != 2 || src.SampleRate() != 44100 || src.BitDepth() != 24 {
		t.Fatalf("format = %d channels, %d Hz, %d-bit, want 2 channels, 44100 Hz, 24-bit",
			src.Channels(), src.SampleRate(), src.BitDepth())
	}

	dst := make([]float64, len(pcm))
	n, err := src.ReadSamples(dst)
	if err != nil || n != len(pcm) {
		t.Fatalf("read: n = %d, err = %v, want %d, nil", n, err, len(pcm))
	}
	want := make([]float64, len(pcm))
	if err := PCMToFloat(want, pcm, 24); err != nil {
		t.Fatalf("PCMToFloat: %v", err)
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d: got %g, want %g", i, dst[i], want[i])
		}
	}
}

func TestNewWAVSource_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF"), 0o644); err != nil {
		t.Fatalf("writing garbage: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening: %v", err)
	}
	defer func() { _ = f.Close() }()
	if _, err := NewWAVSource(wav.NewDecoder(f)); err == nil {
		t.Error("expected error for non-WAV bytes, got nil")
	}
}
