// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

const (
	demodSampleRate = 48000.0
	demodBlockSize  = 160
	demodMarkFreq   = 2225.0
	demodSpaceFreq  = 2025.0
)

// toneBlock generates n samples of a sinusoid at the given frequency with a
// phase that continues from the given sample offset.
func toneBlock(frequency float64, offset, n int) []int16 {
	block := make([]int16, n)
	for i := range block {
		t := float64(offset+i) / demodSampleRate
		block[i] = int16(16000 * math.Sin(2*math.Pi*frequency*t))
	}
	return block
}

func newTestDemodulator() *Demodulator {
	return NewDemodulator(demodBlockSize, demodMarkFreq, demodSpaceFreq, demodSampleRate)
}

func TestDemodulateBlockMarkAndSpace(t *testing.T) {
	t.Parallel()

	d := newTestDemodulator()

	if bit := d.DemodulateBlock(toneBlock(demodMarkFreq, 0, demodBlockSize)); bit != BitMark {
		t.Errorf("mark tone demodulated as %d, want %d", bit, BitMark)
	}

	if bit := d.DemodulateBlock(toneBlock(demodSpaceFreq, 0, demodBlockSize)); bit != BitSpace {
		t.Errorf("space tone demodulated as %d, want %d", bit, BitSpace)
	}
}

func TestDemodulateBlockResetsBetweenBlocks(t *testing.T) {
	t.Parallel()

	d := newTestDemodulator()

	// A loud space block must not leak energy into the next decision.
	d.DemodulateBlock(toneBlock(demodSpaceFreq, 0, demodBlockSize))

	if bit := d.DemodulateBlock(toneBlock(demodMarkFreq, 0, demodBlockSize)); bit != BitMark {
		t.Errorf("mark tone after space block demodulated as %d, want %d", bit, BitMark)
	}
}

func TestDemodulateSilenceTiesToMark(t *testing.T) {
	t.Parallel()

	d := newTestDemodulator()
	bits := d.Demodulate(make([]int16, demodBlockSize*7))

	if len(bits) != 7 {
		t.Fatalf("Demodulate() returned %d bits, want 7", len(bits))
	}
	for i, bit := range bits {
		if bit != BitMark {
			t.Errorf("bit %d = %d, want %d (tie resolves to mark)", i, bit, BitMark)
		}
	}
}

func TestDemodulateBitSequence(t *testing.T) {
	t.Parallel()

	want := []byte{1, 0, 0, 1, 1, 0, 1, 0, 1, 1}

	samples := make([]int16, 0, len(want)*demodBlockSize)
	for _, bit := range want {
		freq := demodSpaceFreq
		if bit == BitMark {
			freq = demodMarkFreq
		}
		samples = append(samples, toneBlock(freq, len(samples), demodBlockSize)...)
	}

	d := newTestDemodulator()
	got := d.Demodulate(samples)

	if len(got) != len(want) {
		t.Fatalf("Demodulate() returned %d bits, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDemodulatePartialFinalBlock(t *testing.T) {
	t.Parallel()

	d := newTestDemodulator()

	// Two full blocks plus a 40-sample tail: three bit decisions, the last
	// over the short block only. The tail must never be indexed as if it
	// were full, and must not be padded.
	samples := make([]int16, demodBlockSize*2)
	samples = append(samples, toneBlock(demodSpaceFreq, len(samples), 40)...)
	bits := d.Demodulate(samples)

	if len(bits) != 3 {
		t.Fatalf("Demodulate() returned %d bits, want 3", len(bits))
	}
}

func TestDemodulateInputExhaustion(t *testing.T) {
	t.Parallel()

	d := newTestDemodulator()

	if bits := d.Demodulate(nil); len(bits) != 0 {
		t.Errorf("Demodulate(nil) returned %d bits, want 0", len(bits))
	}

	// Fewer samples than one block is exhaustion, not a short block.
	if bits := d.Demodulate(make([]int16, demodBlockSize-1)); len(bits) != 0 {
		t.Errorf("Demodulate() on a sub-block input returned %d bits, want 0", len(bits))
	}
}
