// Package dcblock removes constant (DC) offset from streamed audio with a
// fixed-coefficient one-pole high-pass filter.
//
// The filter evaluates the difference equation
//
//	y[n] = x[n] - x[n-1] + 0.9997*y[n-1]
//
// once per input sample, keeping only the previous input and the previous
// output as state. The transfer function
//
//	H(z) = (1 - z^-1) / (1 - 0.9997*z^-1)
//
// has a zero at DC and a real pole at z = 0.9997 just inside the unit
// circle. Gain is exactly zero at 0 Hz and within a fraction of a dB of
// unity across the audible band; the -3 dB corner lies near
// (1-0.9997)*fs/(2*pi), about 2.1 Hz at 44.1 kHz, and scales with the
// sample rate. Relative to the common 0.995 coefficient, 0.9997 attenuates
// very low frequencies less but follows a drifting offset more slowly.
//
// Processing is strictly per sample, branch-light, and allocation-free, so
// ProcessSample is safe to call from a real-time audio callback. A bypass
// flag short-circuits the filter without touching its state; latent state
// resumes as soon as bypass is lifted.
//
// Inputs are not validated. A NaN or infinite sample poisons the feedback
// path and every subsequent output until Reset is called. Sustained silence
// lets the recursion decay through the denormal range; the exact recurrence
// is kept rather than flushing small values to zero, which can cost some
// arithmetic speed on hardware without flush-to-zero semantics.
//
// # Usage
//
//	var b dcblock.Blocker
//	for i, x := range in {
//		out[i] = b.ProcessSample(x)
//	}
//
// A Blocker handles exactly one channel. Multi-channel hosts allocate one
// Blocker per channel and feed each channel's samples in stream order.
package dcblock
