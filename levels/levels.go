// Package levels measures time-domain signal levels: DC offset, RMS, and
// peak amplitude, in linear and decibel form. It quantifies how much
// constant offset a stream carries and how much of it survives filtering.
package levels

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds the level measurements of one signal segment.
//
//nolint:revive
type Stats struct {
	Length  int
	DC      float64 // mean
	DC_dB   float64
	RMS     float64
	RMS_dB  float64
	Peak    float64 // max absolute amplitude
	Peak_dB float64
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		DC_dB:   math.Inf(-1),
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Measure computes the levels of signal in one pass. The block reductions
// use SIMD-optimized implementations when available (AVX2, SSE2, NEON).
func Measure(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	nf := float64(n)
	mean := vecmath.Sum(signal) / nf
	rms := math.Sqrt(vecmath.DotProduct(signal, signal) / nf)
	peak := vecmath.MaxAbs(signal)

	return Stats{
		Length:  n,
		DC:      mean,
		DC_dB:   ampTodB(mean),
		RMS:     rms,
		RMS_dB:  ampTodB(rms),
		Peak:    peak,
		Peak_dB: ampTodB(peak),
	}
}

// DC returns the mean of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return vecmath.Sum(signal) / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(signal, signal) / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return vecmath.MaxAbs(signal)
}

// Meter accumulates level measurements incrementally across blocks of
// samples. Results match [Measure] over the concatenated input up to
// floating-point accumulation order, which differs across block splits.
type Meter struct {
	n     int
	sum   float64
	sumSq float64
	peak  float64
}

// NewMeter creates an empty Meter.
func NewMeter() *Meter {
	return &Meter{}
}

// Update adds a block of samples to the running measurements.
func (m *Meter) Update(block []float64) {
	if len(block) == 0 {
		return
	}

	m.n += len(block)
	m.sum += vecmath.Sum(block)
	m.sumSq += vecmath.DotProduct(block, block)

	if p := vecmath.MaxAbs(block); p > m.peak {
		m.peak = p
	}
}

// Result computes the levels of all samples seen since the last Reset.
func (m *Meter) Result() Stats {
	if m.n == 0 {
		return emptyStats()
	}

	nf := float64(m.n)
	mean := m.sum / nf
	rms := math.Sqrt(m.sumSq / nf)

	return Stats{
		Length:  m.n,
		DC:      mean,
		DC_dB:   ampTodB(mean),
		RMS:     rms,
		RMS_dB:  ampTodB(rms),
		Peak:    m.peak,
		Peak_dB: ampTodB(m.peak),
	}
}

// Reset clears all accumulated data, allowing the Meter to be reused.
func (m *Meter) Reset() {
	*m = Meter{}
}
