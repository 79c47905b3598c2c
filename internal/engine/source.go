package engine

import (
	"fmt"
	"math"
)

// SampleSource produces frame-interleaved float64 audio. ReadSamples
// fills dst with up to len(dst) samples and returns the number written.
// A return of (0, nil) means the source is exhausted.
type SampleSource interface {
	ReadSamples(dst []float64) (int, error)
}

// ToneSource generates an endless sine wave with an optional constant
// offset, replicated across all channels. The offset makes it a handy
// exerciser: feed it through a Bank and watch the offset disappear.
type ToneSource struct {
	channels  int
	amplitude float64
	offset    float64
	phase     float64
	phaseStep float64
}

// NewToneSource creates a sine generator at freqHz for the given sample
// rate. Every channel carries the same signal.
func NewToneSource(freqHz, sampleRate, amplitude, offset float64, channels int) (*ToneSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %g", sampleRate)
	}
	if freqHz < 0 || freqHz >= sampleRate/2 {
		return nil, fmt.Errorf("frequency out of range [0, %g): %g", sampleRate/2, freqHz)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("channel count must be > 0: %d", channels)
	}
	return &ToneSource{
		channels:  channels,
		amplitude: amplitude,
		offset:    offset,
		phaseStep: 2 * math.Pi * freqHz / sampleRate,
	}, nil
}

// Channels returns the channel count.
func (s *ToneSource) Channels() int {
	return s.channels
}

// ReadSamples fills dst with whole frames and returns the sample count.
// The tone never ends; ReadSamples never returns 0 for len(dst) >= the
// channel count.
func (s *ToneSource) ReadSamples(dst []float64) (int, error) {
	frames := len(dst) / s.channels
	for f := range frames {
		v := s.offset + s.amplitude*math.Sin(s.phase)
		s.phase += s.phaseStep
		if s.phase > math.Pi {
			s.phase -= 2 * math.Pi
		}
		for c := range s.channels {
			dst[f*s.channels+c] = v
		}
	}
	return frames * s.channels, nil
}
