package engine

import (
	"fmt"
	"math"
)

// pcmMax returns the positive full-scale value for a signed PCM bit depth.
func pcmMax(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16:
		return 32767, nil
	case 24:
		return 8388607, nil
	case 32:
		return 2147483647, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d (want 16, 24 or 32)", bitDepth)
	}
}

// PCMToFloat converts signed integer PCM samples to float64 in [-1, 1].
// dst and src must have the same length.
func PCMToFloat(dst []float64, src []int, bitDepth int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("length mismatch: dst %d, src %d", len(dst), len(src))
	}
	maxVal, err := pcmMax(bitDepth)
	if err != nil {
		return err
	}
	for i, s := range src {
		dst[i] = float64(s) / maxVal
	}
	return nil
}

// FloatToPCM converts float64 samples to signed integer PCM, clamping to
// [-1, 1] first. Values are rounded to the nearest step, so a
// PCMToFloat round trip reproduces the original integers. dst and src
// must have the same length.
func FloatToPCM(dst []int, src []float64, bitDepth int) error {
	if len(dst) != len(src) {
		return fmt.Errorf("length mismatch: dst %d, src %d", len(dst), len(src))
	}
	maxVal, err := pcmMax(bitDepth)
	if err != nil {
		return err
	}
	for i, s := range src {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		dst[i] = int(math.Round(s * maxVal))
	}
	return nil
}
