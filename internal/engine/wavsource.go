package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVSource adapts a WAV decoder to the SampleSource interface,
// converting integer PCM to float64 on the fly.
type WAVSource struct {
	dec      *wav.Decoder
	buf      *audio.IntBuffer
	bitDepth int
	eof      bool
}

// NewWAVSource wraps dec. It fails when dec does not point at a valid
// WAV stream or the bit depth is not 16, 24 or 32.
func NewWAVSource(dec *wav.Decoder) (*WAVSource, error) {
	if !dec.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}
	bitDepth := int(dec.BitDepth)
	if _, err := pcmMax(bitDepth); err != nil {
		return nil, err
	}
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, fmt.Errorf("missing or empty format chunk")
	}
	return &WAVSource{
		dec:      dec,
		buf:      &audio.IntBuffer{Format: format},
		bitDepth: bitDepth,
	}, nil
}

// Channels returns the stream's channel count.
func (s *WAVSource) Channels() int {
	return s.buf.Format.NumChannels
}

// SampleRate returns the stream's sample rate in Hz.
func (s *WAVSource) SampleRate() int {
	return s.buf.Format.SampleRate
}

// BitDepth returns the stream's PCM bit depth.
func (s *WAVSource) BitDepth() int {
	return s.bitDepth
}

// ReadSamples decodes up to len(dst) interleaved samples. It returns
// (0, nil) once the stream is exhausted.
func (s *WAVSource) ReadSamples(dst []float64) (int, error) {
	if s.eof || len(dst) == 0 {
		return 0, nil
	}
	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding PCM: %w", err)
	}
	if n == 0 {
		s.eof = true
		return 0, nil
	}
	if err := PCMToFloat(dst[:n], s.buf.Data[:n], s.bitDepth); err != nil {
		return 0, err
	}
	return n, nil
}
