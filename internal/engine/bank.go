// Package engine hosts the filter in stream settings: it owns the
// per-channel filter instances, the interleaved processing loop, and the
// handoff that lets a control goroutine adjust a running audio stream.
package engine

import (
	"fmt"

	"github.com/cwbudde/algo-dcblock"
)

// Bank filters frame-interleaved multi-channel audio through one
// independent Blocker per channel. Channels never share state.
type Bank struct {
	blockers []dcblock.Blocker
}

// NewBank creates a Bank for the given channel count.
func NewBank(channels int) (*Bank, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("channel count must be > 0: %d", channels)
	}
	return &Bank{blockers: make([]dcblock.Blocker, channels)}, nil
}

// Channels returns the channel count.
func (b *Bank) Channels() int {
	return len(b.blockers)
}

// ProcessInterleaved filters buf in place, sample by sample in frame
// order. len(buf) should be a multiple of Channels(); a trailing partial
// frame is filtered through the leading channels.
func (b *Bank) ProcessInterleaved(buf []float64) {
	channels := len(b.blockers)
	if channels == 1 {
		blk := &b.blockers[0]
		for i, x := range buf {
			buf[i] = blk.ProcessSample(x)
		}
		return
	}

	for i := 0; i < len(buf); i += channels {
		frame := buf[i:min(i+channels, len(buf))]
		for c := range frame {
			frame[c] = b.blockers[c].ProcessSample(frame[c])
		}
	}
}

// SetBypass toggles pass-through mode on every channel.
func (b *Bank) SetBypass(enabled bool) {
	for i := range b.blockers {
		b.blockers[i].SetBypass(enabled)
	}
}

// Bypassed reports whether pass-through mode is active.
func (b *Bank) Bypassed() bool {
	return b.blockers[0].Bypassed()
}

// Reset clears every channel's filter state.
func (b *Bank) Reset() {
	for i := range b.blockers {
		b.blockers[i].Reset()
	}
}
