// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/belldec/bell103/utils"
)

// ReadAll drains src and returns every interleaved sample. The decode
// pipeline is a batch computation over a fully materialized input, so
// sources are collected up front rather than streamed.
func ReadAll(src Source) ([]float32, error) {
	samples := make([]float32, 0, 4096)
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}

// DownmixMono averages interleaved channels into a mono signal. Mono input
// is returned as-is. A trailing partial frame is dropped.
func DownmixMono(samples []float32, channels int) ([]float32, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannelCount
	}
	if channels == 1 {
		return samples, nil
	}

	frames := len(samples) / channels
	mono := make([]float32, frames)
	scale := 1 / float32(channels)

	for f := 0; f < frames; f++ {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += samples[f*channels+c]
		}
		mono[f] = sum * scale
	}

	return mono, nil
}

// Resample converts a mono signal from srcRate to dstRate using Catmull-Rom
// cubic interpolation. Equal rates return the input unchanged.
func Resample(samples []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if srcRate == dstRate || len(samples) == 0 {
		return samples, nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(float64(len(samples)) * float64(dstRate) / float64(srcRate))
	out := make([]float32, outLen)

	at := func(i int) float32 {
		if i < 0 {
			i = 0
		}
		if i >= len(samples) {
			i = len(samples) - 1
		}
		return samples[i]
	}

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))

		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}

	return out, nil
}

// CollectInt16 drains src, downmixes it to mono, resamples it to targetRate,
// and converts to 16-bit PCM: the normalization step between an arbitrary
// audio container and the demodulator's expected input.
func CollectInt16(src Source, targetRate int) ([]int16, error) {
	samples, err := ReadAll(src)
	if err != nil {
		return nil, err
	}

	mono, err := DownmixMono(samples, src.Channels())
	if err != nil {
		return nil, err
	}

	mono, err = Resample(mono, src.SampleRate(), targetRate)
	if err != nil {
		return nil, err
	}

	pcm := make([]int16, len(mono))
	for i, s := range mono {
		pcm[i] = utils.Float32ToInt16(s)
	}
	return pcm, nil
}
