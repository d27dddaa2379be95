// SPDX-License-Identifier: EPL-2.0

package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitsFor encodes a string into a framed bitstream, for building test input.
func bitsFor(t *testing.T, s string) []byte {
	t.Helper()

	var bits []byte
	for _, r := range s {
		frame, err := EncodeRune(r)
		require.NoError(t, err)
		bits = append(bits, frame[:]...)
	}
	return bits
}

func TestAssemblerEmitsEveryTenthBit(t *testing.T) {
	t.Parallel()

	var a Assembler

	for i := 0; i < FrameSize-1; i++ {
		_, ok := a.Push(byte(i % 2))
		assert.False(t, ok, "frame completed after %d bits", i+1)
	}
	assert.Equal(t, FrameSize-1, a.Pending())

	frame, ok := a.Push(1)
	require.True(t, ok)
	assert.Equal(t, frameBits(0, 1, 0, 1, 0, 1, 0, 1, 0, 1), frame)
	assert.Equal(t, 0, a.Pending())

	// The next bit starts a fresh frame.
	_, ok = a.Push(0)
	assert.False(t, ok)
	assert.Equal(t, 1, a.Pending())
}

func TestFramesDropsPartialTail(t *testing.T) {
	t.Parallel()

	bits := bitsFor(t, "OK")

	// Appending a ragged tail must not change what decodes, and must not
	// produce an extra frame.
	for _, extra := range []int{1, 5, 9} {
		ragged := append(append([]byte{}, bits...), make([]byte, extra)...)
		assert.Len(t, Frames(ragged), 2, "tail of %d bits", extra)
		assert.Equal(t, "OK", DecodeBits(ragged), "tail of %d bits", extra)
	}
}

func TestDecodeBitsSkipsInvalidFrame(t *testing.T) {
	t.Parallel()

	good1, err := EncodeRune('H')
	require.NoError(t, err)
	good2, err := EncodeRune('I')
	require.NoError(t, err)

	// A valid-looking frame with a bad start bit, sandwiched between two
	// valid ones: exactly the two valid characters come out, in order.
	bad := good1
	bad[0] = 1

	bits := append(append(append([]byte{}, good1[:]...), bad[:]...), good2[:]...)
	assert.Equal(t, "HI", DecodeBits(bits))

	// Same with a bad stop bit.
	bad = good1
	bad[FrameSize-1] = 0

	bits = append(append(append([]byte{}, good1[:]...), bad[:]...), good2[:]...)
	assert.Equal(t, "HI", DecodeBits(bits))
}

func TestDecodeBitsEmptyAndShortStreams(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DecodeBits(nil))
	assert.Empty(t, DecodeBits(make([]byte, FrameSize-1)))
}

func TestDecodeBitsMessage(t *testing.T) {
	t.Parallel()

	const want = "Bell 103 says hi!"
	assert.Equal(t, want, DecodeBits(bitsFor(t, want)))
}

func TestMessageBuilderPreservesOrder(t *testing.T) {
	t.Parallel()

	var m MessageBuilder
	for _, r := range "abc" {
		m.AppendRune(r)
	}

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "abc", m.String())
}
