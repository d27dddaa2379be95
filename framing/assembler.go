// SPDX-License-Identifier: EPL-2.0

package framing

// Assembler groups a bitstream into consecutive, non-overlapping 10-bit
// frames. Bits are pushed in stream order; the 11th bit starts a new frame.
// There is no resynchronization: a misaligned stream stays misaligned.
//
// A trailing group of fewer than 10 bits is simply never completed, so a
// partial tail can never be read out of bounds or decoded.
//
// The zero value is ready to use.
type Assembler struct {
	frame Frame
	n     int
}

// Push adds one bit to the frame under assembly. When the bit completes a
// frame, the frame is returned with ok == true and the assembler starts the
// next one.
func (a *Assembler) Push(bit byte) (frame Frame, ok bool) {
	a.frame[a.n] = bit
	a.n++

	if a.n < FrameSize {
		return Frame{}, false
	}

	frame = a.frame
	a.n = 0
	return frame, true
}

// Pending returns how many bits of the current frame have been pushed.
func (a *Assembler) Pending() int { return a.n }

// Frames splits a whole bitstream into complete frames, discarding any
// partial tail.
func Frames(bits []byte) []Frame {
	frames := make([]Frame, 0, len(bits)/FrameSize)

	var a Assembler
	for _, bit := range bits {
		if frame, ok := a.Push(bit); ok {
			frames = append(frames, frame)
		}
	}

	return frames
}
