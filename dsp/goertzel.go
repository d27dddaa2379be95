// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// Goertzel estimates the energy of a single target frequency within a block
// of PCM samples, without computing a full spectrum.
//
// The filter is a second-order IIR recursion over two accumulators. State
// accumulates across Process calls until Reset, so one block may be fed in
// several pieces. Callers must Reset between blocks; magnitudes read from a
// filter that was not reset mix energy from multiple blocks and are
// meaningless.
//
// All parameters must be positive. Validation belongs to the configuration
// layer; see bell103.Config.Validate.
type Goertzel struct {
	k      int // truncated bin index, diagnostics only
	coeff  float64
	sine   float64
	cosine float64

	q1 float64
	q2 float64
}

// NewGoertzel derives the filter constants for one target frequency.
//
// The bin index k = blockSize*targetFreq/sampleRate is used real-valued; a
// non-integer bin is allowed and merely reduces selectivity.
func NewGoertzel(blockSize int, targetFreq, sampleRate float64) *Goertzel {
	k := float64(blockSize) * targetFreq / sampleRate
	omega := 2 * math.Pi * k / float64(blockSize)
	cosine := math.Cos(omega)

	return &Goertzel{
		k:      int(k),
		coeff:  2 * cosine,
		sine:   math.Sin(omega),
		cosine: cosine,
	}
}

// Process runs the recursion over every sample in order, mutating the
// accumulators in place. It may be called repeatedly before a Reset to feed
// one block in pieces.
func (g *Goertzel) Process(samples []int16) {
	q1, q2 := g.q1, g.q2
	for _, s := range samples {
		q0 := g.coeff*q1 - q2 + float64(s)
		q2 = q1
		q1 = q0
	}
	g.q1, g.q2 = q1, q2
}

// MagnitudeSquared returns the scaled squared magnitude of the target
// frequency component accumulated so far. The value is relative, not
// calibrated to absolute signal power; it is only meaningful compared to
// another filter run over the same samples.
func (g *Goertzel) MagnitudeSquared() float64 {
	return g.q1*g.q1 + g.q2*g.q2 - g.q1*g.q2*g.coeff
}

// RealImag returns the real and imaginary parts of the complex
// frequency-domain value. Provided for diagnostics; the decode path uses
// MagnitudeSquared only.
func (g *Goertzel) RealImag() (re, im float64) {
	return g.q1 - g.q2*g.cosine, g.q2 * g.sine
}

// Reset clears the accumulators so the next Process starts a fresh block.
func (g *Goertzel) Reset() {
	g.q1 = 0
	g.q2 = 0
}

// K returns the truncated bin index. Diagnostics only; the recursion uses
// the real-valued index.
func (g *Goertzel) K() int { return g.k }

// Coeff returns the precomputed recursion coefficient 2*cos(omega).
func (g *Goertzel) Coeff() float64 { return g.coeff }
