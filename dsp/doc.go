// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the tone-detection half of the Bell 103 decoder.
//
// # Goertzel Filter
//
// The Goertzel algorithm computes the magnitude of one frequency bin of a
// signal without a full spectral transform. For a block of N samples it
// needs one multiply-accumulate per sample and a constant-time readout,
// which makes it the standard choice when only two tones matter:
//
//	g := dsp.NewGoertzel(160, 2225, 48000)
//	g.Process(block)
//	energy := g.MagnitudeSquared()
//	g.Reset()
//
// Magnitudes are relative. They carry no absolute calibration and are only
// comparable between filters that processed the same samples.
//
// # Demodulator
//
// The Demodulator runs a mark filter and a space filter over each block and
// emits one bit per block:
//
//	d := dsp.NewDemodulator(160, 2225, 2025, 48000)
//	bits := d.Demodulate(samples)
//
// Ties resolve to mark. The filters live for the whole decode run and are
// reset between blocks; no per-block allocation happens.
//
// Arithmetic is float64 throughout. There are no overflow or NaN guards;
// pathological inputs are out of scope.
package dsp
