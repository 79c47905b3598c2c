package engine

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-dcblock/levels"
)

// streamBlockFrames is the number of frames a Stream pulls from its
// source per processing block.
const streamBlockFrames = 512

// Stream pulls float64 audio from a SampleSource, filters it through a
// Bank and serves the result as little-endian float32 bytes via Read,
// the layout an audio player configured for 32-bit float PCM expects.
//
// Read is driven by a single consumer (typically the player's own
// goroutine). SetBypass, RequestReset and Levels are safe to call
// concurrently from a control goroutine; bypass and reset take effect
// at the next block boundary. The Stream owns the Bank's bypass flag;
// toggle it through the Stream, not the Bank.
type Stream struct {
	src  SampleSource
	bank *Bank

	bypass atomic.Bool
	reset  atomic.Bool

	samples []float64
	buf     []byte
	pending []byte

	mu       sync.Mutex
	inMeter  *levels.Meter
	outMeter *levels.Meter
}

// NewStream wires src through bank. The source must produce the same
// channel layout the bank was created for.
func NewStream(src SampleSource, bank *Bank) *Stream {
	blockSamples := streamBlockFrames * bank.Channels()
	return &Stream{
		src:      src,
		bank:     bank,
		samples:  make([]float64, blockSamples),
		buf:      make([]byte, blockSamples*4),
		inMeter:  levels.NewMeter(),
		outMeter: levels.NewMeter(),
	}
}

// SetBypass requests pass-through mode starting at the next block.
func (s *Stream) SetBypass(enabled bool) {
	s.bypass.Store(enabled)
}

// Bypassed reports the requested bypass state.
func (s *Stream) Bypassed() bool {
	return s.bypass.Load()
}

// RequestReset clears the filter state at the next block boundary.
func (s *Stream) RequestReset() {
	s.reset.Store(true)
}

// Levels returns running level statistics for the audio entering and
// leaving the filter bank since the stream started.
func (s *Stream) Levels() (in, out levels.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inMeter.Result(), s.outMeter.Result()
}

// Read fills p with filtered samples encoded as little-endian float32.
// It returns io.EOF once the source is exhausted and all pending bytes
// have been delivered.
func (s *Stream) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if len(s.pending) == 0 {
			n, err := s.fillBlock()
			if err != nil {
				return total, err
			}
			if n == 0 {
				if total == 0 {
					return 0, io.EOF
				}
				return total, nil
			}
		}
		c := copy(p[total:], s.pending)
		s.pending = s.pending[c:]
		total += c
	}
	return total, nil
}

// fillBlock applies pending control changes, pulls one block from the
// source, meters and filters it, and stages the encoded bytes.
func (s *Stream) fillBlock() (int, error) {
	if s.reset.Swap(false) {
		s.bank.Reset()
	}
	s.bank.SetBypass(s.bypass.Load())

	n, err := s.src.ReadSamples(s.samples)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	block := s.samples[:n]

	s.mu.Lock()
	s.inMeter.Update(block)
	s.mu.Unlock()

	s.bank.ProcessInterleaved(block)

	s.mu.Lock()
	s.outMeter.Update(block)
	s.mu.Unlock()

	encodeFloat32LE(s.buf[:n*4], block)
	s.pending = s.buf[:n*4]
	return n, nil
}

// encodeFloat32LE clamps src to [-1, 1] and writes each sample as a
// little-endian float32.
func encodeFloat32LE(dst []byte, src []float64) {
	for i, v := range src {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
	}
}
