// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data for testing. It implements the
// audio.Source interface (without importing it, to stay decoupled).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate (samples per channel)
	generated   int
	waveform    func(frame, channel int) float32
}

// NewMockSource creates a mock source producing totalFrames frames, with
// sample values supplied by waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource creates a mock source that generates a sine wave at the
// given frequency on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewAFSKSource creates a mono mock source that emits one block of
// blockSize samples per bit: the mark tone for 1 bits, the space tone for
// 0 bits. The phase may jump at block boundaries; block-aligned
// demodulation does not care.
func NewAFSKSource(sampleRate, blockSize int, markFreq, spaceFreq float64, bits []byte) *MockSource {
	return NewMockSource(sampleRate, 1, blockSize*len(bits), func(frame, _ int) float32 {
		freq := spaceFreq
		if bits[frame/blockSize] != 0 {
			freq = markFreq
		}
		t := float64(frame) / float64(sampleRate)
		return float32(0.5 * math.Sin(2*math.Pi*freq*t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += frames
	written := frames * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}
	return written, nil
}
