// SPDX-License-Identifier: EPL-2.0

package dsp

// Mark and space bit values emitted by the Demodulator.
const (
	BitSpace byte = 0
	BitMark  byte = 1
)

// Demodulator turns blocks of PCM samples into a bitstream by comparing the
// energy of the mark and space tones within each block.
//
// It owns two Goertzel filters configured for the same block size and sample
// rate but different target frequencies, and resets them deterministically
// between blocks. No other component may touch the filter state.
type Demodulator struct {
	blockSize int
	mark      *Goertzel
	space     *Goertzel
}

// NewDemodulator builds a mark/space comparator. Parameters must already be
// validated (positive) by the configuration layer.
func NewDemodulator(blockSize int, markFreq, spaceFreq, sampleRate float64) *Demodulator {
	return &Demodulator{
		blockSize: blockSize,
		mark:      NewGoertzel(blockSize, markFreq, sampleRate),
		space:     NewGoertzel(blockSize, spaceFreq, sampleRate),
	}
}

// BlockSize returns the number of samples per bit decision.
func (d *Demodulator) BlockSize() int { return d.blockSize }

// DemodulateBlock decides one bit for a single block. A tie resolves to
// mark, so silence demodulates as a stream of ones. Both filters are reset
// afterwards, ready for the next block.
func (d *Demodulator) DemodulateBlock(block []int16) byte {
	d.mark.Process(block)
	d.space.Process(block)

	bit := BitSpace
	if d.mark.MagnitudeSquared() >= d.space.MagnitudeSquared() {
		bit = BitMark
	}

	d.mark.Reset()
	d.space.Reset()

	return bit
}

// Demodulate walks the whole sample sequence in blocks of BlockSize and
// returns one bit per block, in block order. Fewer samples than one block
// means the input is exhausted before a single symbol: no bits. Otherwise a
// final block shorter than BlockSize is processed over however many samples
// are present; it is not padded.
func (d *Demodulator) Demodulate(samples []int16) []byte {
	if len(samples) < d.blockSize {
		return nil
	}

	bits := make([]byte, 0, (len(samples)+d.blockSize-1)/d.blockSize)

	for start := 0; start < len(samples); start += d.blockSize {
		end := min(start+d.blockSize, len(samples))
		bits = append(bits, d.DemodulateBlock(samples[start:end]))
	}

	return bits
}
