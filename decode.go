// SPDX-License-Identifier: EPL-2.0

package bell103

import (
	"github.com/belldec/bell103/audio"
	"github.com/belldec/bell103/dsp"
	"github.com/belldec/bell103/framing"
)

// Decode demodulates a Bell 103 AFSK signal into its textual message.
//
// The sample sequence is consumed block by block: each block of
// cfg.BlockSize samples yields one bit (mark or space, whichever tone
// dominates), bits are grouped into 10-bit character frames, and frames
// with a valid start/stop pattern contribute one character each.
//
// Once the configuration validates, nothing is fatal: too few samples for a
// block, a short final block, a ragged bit tail, and invalid frames all
// degrade to fewer (or zero) characters, never to an error.
func Decode(cfg Config, samples []int16) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	demod := dsp.NewDemodulator(cfg.BlockSize, cfg.MarkFrequency, cfg.SpaceFrequency, cfg.SampleRate)

	return framing.DecodeBits(demod.Demodulate(samples)), nil
}

// DecodeSource decodes a message from any decoded audio stream. The stream
// is normalized first: channels are averaged to mono and the signal is
// resampled to cfg.SampleRate, so a stereo 44.1 kHz recording of a 48 kHz
// transmission still decodes.
func DecodeSource(cfg Config, src audio.Source) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	samples, err := audio.CollectInt16(src, int(cfg.SampleRate))
	if err != nil {
		return "", err
	}

	return Decode(cfg, samples)
}
