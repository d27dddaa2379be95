// SPDX-License-Identifier: EPL-2.0

package framing

import (
	"errors"
	"unicode/utf8"
)

// FrameSize is the number of bits per character frame: one start bit, seven
// data bits, an unused bit at position 8, and one stop bit.
const FrameSize = 10

// dataBits is the number of payload bits per frame.
const dataBits = 7

var (
	// ErrBadStartBit indicates the first bit of a frame was not 0.
	ErrBadStartBit = errors.New("frame start bit is not 0")
	// ErrBadStopBit indicates the last bit of a frame was not 1.
	ErrBadStopBit = errors.New("frame stop bit is not 1")
	// ErrInvalidCharacterCode indicates the extracted code is not a valid
	// code point. Unreachable for 7-bit payloads, kept as a guard.
	ErrInvalidCharacterCode = errors.New("frame data is not a valid character code")
	// ErrCharacterTooWide indicates a rune that does not fit in 7 data bits.
	ErrCharacterTooWide = errors.New("character does not fit in 7 data bits")
)

// Frame is one complete 10-bit character frame in transmission order:
// frame[0] is the start bit, frame[1..7] the data bits least significant
// first, frame[9] the stop bit.
type Frame [FrameSize]byte

// Decode validates the start/stop pattern and extracts the character.
//
// Frames failing validation return ErrBadStartBit or ErrBadStopBit; both are
// per-frame conditions, and callers are expected to skip the frame and
// continue. The data bits are packed least-significant-bit first, so
// frame[1] becomes bit 0 of the code.
func (f Frame) Decode() (rune, error) {
	if f[0] != 0 {
		return 0, ErrBadStartBit
	}
	if f[FrameSize-1] != 1 {
		return 0, ErrBadStopBit
	}

	var code rune
	for i := 0; i < dataBits; i++ {
		if f[1+i] != 0 {
			code |= 1 << i
		}
	}

	if !utf8.ValidRune(code) {
		return 0, ErrInvalidCharacterCode
	}
	return code, nil
}

// EncodeRune builds the frame that Decode maps back to r. Runes above 0x7F
// do not fit in the 7 data bits and return ErrCharacterTooWide.
func EncodeRune(r rune) (Frame, error) {
	if r < 0 || r > 0x7F {
		return Frame{}, ErrCharacterTooWide
	}

	var f Frame
	for i := 0; i < dataBits; i++ {
		f[1+i] = byte(r>>i) & 1
	}
	f[FrameSize-1] = 1
	return f, nil
}
