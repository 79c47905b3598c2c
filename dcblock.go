package dcblock

// Pole is the fixed feedback coefficient, the filter's single design
// constant. It sets the pole of H(z) on the real axis at z = Pole and with
// it the corner frequency and the offset settling time. The value is not
// runtime-configurable.
const Pole = 0.9997

// Blocker is a single-channel DC-offset removal filter.
//
// The zero value is ready to use: zero state, bypass disabled. A Blocker
// must not be shared across channels; see the package documentation.
type Blocker struct {
	prevIn  float64
	prevOut float64
	bypass  bool
}

// New returns a Blocker with zero state and bypass disabled. It is
// equivalent to new(Blocker).
func New() *Blocker {
	return &Blocker{}
}

// ProcessSample filters one input sample and returns the output.
//
// With bypass enabled the input is returned unchanged and state is not
// advanced. Inputs are not validated: a non-finite sample corrupts the
// feedback state until Reset is called.
func (b *Blocker) ProcessSample(x float64) float64 {
	if b.bypass {
		return x
	}

	y := x - b.prevIn + Pole*b.prevOut
	b.prevIn = x
	b.prevOut = y

	return y
}

// Reset clears filter state. The next ProcessSample call behaves as the
// first call on a fresh Blocker. Idempotent.
func (b *Blocker) Reset() {
	b.prevIn = 0
	b.prevOut = 0
}

// SetBypass toggles pass-through mode. Toggling never modifies state.
func (b *Blocker) SetBypass(enabled bool) {
	b.bypass = enabled
}

// Bypassed reports whether pass-through mode is active.
func (b *Blocker) Bypassed() bool {
	return b.bypass
}

// State returns the retained previous input and previous output samples.
// It exists for observation; state advances only through ProcessSample and
// clears only through Reset.
func (b *Blocker) State() (prevIn, prevOut float64) {
	return b.prevIn, b.prevOut
}
