package engine

import (
	"testing"

	"github.com/cwbudde/algo-dcblock"
	"github.com/cwbudde/algo-dcblock/internal/testutil"
)

func TestNewBank_RejectsBadChannelCount(t *testing.T) {
	for _, channels := range []int{0, -1} {
		if _, err := NewBank(channels); err == nil {
			t.Errorf("NewBank(%d): expected error, got nil", channels)
		}
	}
}

func TestNewBank_Channels(t *testing.T) {
	bank, err := NewBank(3)
	if err != nil {
		t.Fatalf("NewBank(3): %v", err)
	}
	if got := bank.Channels(); got != 3 {
		t.Errorf("Channels() = %d, want 3", got)
	}
}

func TestBank_MonoMatchesBlocker(t *testing.T) {
	input := testutil.OffsetNoise(3, 0.25, 0.5, 256)

	bank, err := NewBank(1)
	if err != nil {
		t.Fatalf("NewBank(1): %v", err)
	}
	got := make([]float64, len(input))
	copy(got, input)
	bank.ProcessInterleaved(got)

	var ref dcblock.Blocker
	for i, x := range input {
		want := ref.ProcessSample(x)
		if got[i] != want {
			t.Fatalf("sample %d: got %g, want %g", i, got[i], want)
		}
	}
}

func TestBank_StereoChannelsIndependent(t *testing.T) {
	left := testutil.OffsetSine(0.3, 441, 44100, 0.5, 128)
	right := testutil.OffsetNoise(7, -0.2, 0.8, 128)

	got := testutil.Interleave(left, right)
	bank, err := NewBank(2)
	if err != nil {
		t.Fatalf("NewBank(2): %v", err)
	}
	bank.ProcessInterleaved(got)

	var refL, refR dcblock.Blocker
	wantL := make([]float64, len(left))
	wantR := make([]float64, len(right))
	for i := range left {
		wantL[i] = refL.ProcessSample(left[i])
		wantR[i] = refR.ProcessSample(right[i])
	}
	want := testutil.Interleave(wantL, wantR)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestBank_SplitBuffersMatchSinglePass(t *testing.T) {
	input := testutil.OffsetSine(0.4, 1000, 48000, 0.6, 200)

	whole, err := NewBank(2)
	if err != nil {
		t.Fatalf("NewBank(2): %v", err)
	}
	want := testutil.Interleave(input, input)
	whole.ProcessInterleaved(want)

	split, err := NewBank(2)
	if err != nil {
		t.Fatalf("NewBank(2): %v", err)
	}
	got := testutil.Interleave(input, input)
	half := len(got) / 2
	split.ProcessInterleaved(got[:half])
	split.ProcessInterleaved(got[half:])

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestBank_PartialTrailingFrame(t *testing.T) {
	bank, err := NewBank(2)
	if err != nil {
		t.Fatalf("NewBank(2): %v", err)
	}
	buf := []float64{1, 2, 1, 2, 1}
	bank.ProcessInterleaved(buf)

	var refL, refR dcblock.Blocker
	want := []float64{
		refL.ProcessSample(1), refR.ProcessSample(2),
		refL.ProcessSample(1), refR.ProcessSample(2),
		refL.ProcessSample(1),
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("sample %d: got %g, want %g", i, buf[i], want[i])
		}
	}
}

func TestBank_SetBypass(t *testing.T) {
	bank, err := NewBank(2)
	if err != nil {
		t.Fatalf("NewBank(2): %v", err)
	}
	if bank.Bypassed() {
		t.Fatal("new bank should not be bypassed")
	}

	bank.SetBypass(true)
	if !bank.Bypassed() {
		t.Fatal("Bypassed() should report true after SetBypass(true)")
	}

	buf := []float64{0.5, -0.5, 0.25, -0.25}
	want := []float64{0.5, -0.5, 0.25, -0.25}
	bank.ProcessInterleaved(buf)
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("bypassed sample %d: got %g, want %g", i, buf[i], want[i])
		}
	}

	bank.SetBypass(false)
	if bank.Bypassed() {
		t.Fatal("Bypassed() should report false after SetBypass(false)")
	}
}

func TestBank_Reset(t *testing.T) {
	bank, err := NewBank(2)
	if err != nil {
		t.Fatalf("NewBank(2): %v", err)
	}
	first := []float64{1, 1, 1, 1}
	bank.ProcessInterleaved(first)

	bank.Reset()

	second := []float64{1, 1, 1, 1}
	bank.ProcessInterleaved(second)
	if second[0] != 1.0 || second[1] != 1.0 {
		t.Errorf("first frame after reset = [%g, %g], want [1, 1]", second[0], second[1])
	}
	if second[2] != dcblock.Pole || second[3] != dcblock.Pole {
		t.Errorf("second frame after reset = [%g, %g], want [%g, %g]",
			second[2], second[3], dcblock.Pole, dcblock.Pole)
	}
}
