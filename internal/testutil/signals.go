package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a sine wave with deterministic phase.
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// OffsetSine generates a sine wave riding on a constant offset.
func OffsetSine(offset, freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := Sine(freqHz, sampleRate, amplitude, n)
	for i := range out {
		out[i] += offset
	}
	return out
}

// Noise generates white noise from a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// OffsetNoise generates seeded white noise riding on a constant offset.
func OffsetNoise(seed int64, offset, amplitude float64, n int) []float64 {
	out := Noise(seed, amplitude, n)
	for i := range out {
		out[i] += offset
	}
	return out
}

// Constant generates a signal holding value for n samples.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Drift generates a linear ramp from start to end, modeling a slowly
// wandering offset.
func Drift(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Interleave merges per-channel signals into one frame-interleaved slice.
// All channels must have equal length.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]float64, 0, frames*len(channels))
	for i := range frames {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}
	return out
}
