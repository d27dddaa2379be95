// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"
)

const (
	testSampleRate = 8000.0
	testBlockSize  = 205
	testTargetFreq = 941.0
)

// synthSamples generates one block of an offset sinusoid at the given
// frequency, quantized through uint8 exactly like the classic Goertzel
// reference vectors (amplitude 100, DC offset 100).
func synthSamples(frequency float64) []int16 {
	step := frequency * 2 * math.Pi / testSampleRate
	samples := make([]int16, testBlockSize)
	for i := range samples {
		samples[i] = int16(uint8(100.0*math.Sin(float64(i)*step) + 100.0))
	}
	return samples
}

// closeTo reports whether got is within rel relative tolerance of want.
func closeTo(got, want, rel float64) bool {
	return math.Abs(got-want) <= math.Abs(want)*rel
}

func TestGoertzelDerivedConstants(t *testing.T) {
	t.Parallel()

	g := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)

	// k = 205*941/8000 = 24.113125, truncated to 24
	if g.K() != 24 {
		t.Errorf("K() = %d, want 24", g.K())
	}

	omega := 2 * math.Pi * (float64(testBlockSize) * testTargetFreq / testSampleRate) / float64(testBlockSize)
	if want := 2 * math.Cos(omega); g.Coeff() != want {
		t.Errorf("Coeff() = %v, want %v", g.Coeff(), want)
	}
}

func TestGoertzelReferenceMagnitudes(t *testing.T) {
	t.Parallel()

	// Known magnitudes for the 941 Hz detector at 8 kHz over 205 samples,
	// probed 250 Hz below, on, and 250 Hz above the target.
	tests := []struct {
		name      string
		frequency float64
		wantMagSq float64
	}{
		{"below target", testTargetFreq - 250, 134338},
		{"on target", testTargetFreq, 103981719},
		{"above target", testTargetFreq + 250, 387565},
	}

	g := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Process(synthSamples(tt.frequency))
			defer g.Reset()

			magSq := g.MagnitudeSquared()
			if !closeTo(magSq, tt.wantMagSq, 1e-3) {
				t.Errorf("MagnitudeSquared() = %v, want ~%v", magSq, tt.wantMagSq)
			}

			// The two readouts must agree: real^2 + imag^2 == magnitude^2.
			re, im := g.RealImag()
			if !closeTo(re*re+im*im, magSq, 1e-9) {
				t.Errorf("RealImag() magnitude %v disagrees with MagnitudeSquared() %v", re*re+im*im, magSq)
			}
		})
	}
}

func TestGoertzelSelectivity(t *testing.T) {
	t.Parallel()

	g := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)

	g.Process(synthSamples(testTargetFreq))
	onTarget := g.MagnitudeSquared()
	g.Reset()

	for _, offset := range []float64{-250, 250} {
		g.Process(synthSamples(testTargetFreq + offset))
		offTarget := g.MagnitudeSquared()
		g.Reset()

		if onTarget <= offTarget {
			t.Errorf("magnitude at target %v not above magnitude at %+.0f Hz offset (%v)",
				onTarget, offset, offTarget)
		}
	}
}

func TestGoertzelResetMatchesFreshFilter(t *testing.T) {
	t.Parallel()

	block := synthSamples(testTargetFreq)

	reused := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)
	reused.Process(synthSamples(testTargetFreq - 250))
	reused.Reset()
	reused.Process(block)

	fresh := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)
	fresh.Process(block)

	if reused.MagnitudeSquared() != fresh.MagnitudeSquared() {
		t.Errorf("reset filter magnitude %v differs from fresh filter %v",
			reused.MagnitudeSquared(), fresh.MagnitudeSquared())
	}
}

func TestGoertzelProcessAccumulatesAcrossCalls(t *testing.T) {
	t.Parallel()

	block := synthSamples(testTargetFreq)

	whole := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)
	whole.Process(block)

	pieces := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)
	pieces.Process(block[:57])
	pieces.Process(block[57:130])
	pieces.Process(block[130:])

	if whole.MagnitudeSquared() != pieces.MagnitudeSquared() {
		t.Errorf("piecewise Process() magnitude %v differs from single call %v",
			pieces.MagnitudeSquared(), whole.MagnitudeSquared())
	}
}

func TestGoertzelEmptyBlock(t *testing.T) {
	t.Parallel()

	g := NewGoertzel(testBlockSize, testTargetFreq, testSampleRate)
	g.Process(nil)

	if got := g.MagnitudeSquared(); got != 0 {
		t.Errorf("MagnitudeSquared() after empty Process = %v, want 0", got)
	}
}
