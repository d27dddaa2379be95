// SPDX-License-Identifier: EPL-2.0

// Package framing reassembles a demodulated bitstream into characters.
//
// Each character travels in a fixed 10-bit frame: a start bit (0), seven
// data bits least significant first, and a stop bit (1). Frames are cut
// from the bitstream in consecutive, non-overlapping groups of ten with no
// resynchronization; the decoder assumes the upstream demodulator delivered
// symbol-aligned bits.
//
//	frames := framing.Frames(bits)   // partial tail dropped
//	r, err := frames[0].Decode()     // start/stop validated
//
// or in one step:
//
//	message := framing.DecodeBits(bits)
//
// Frame-level failures (bad start bit, bad stop bit, invalid character
// code) discard that frame only; decoding continues with the next one.
package framing
