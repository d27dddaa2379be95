// SPDX-License-Identifier: EPL-2.0

package bell103

import (
	"math"

	"github.com/belldec/bell103/framing"
)

// encodeAmplitude is the peak PCM level of generated tones, comfortably
// below full scale to survive resampling without clipping.
const encodeAmplitude = 16000

// Encode modulates a message into a Bell 103 AFSK sample sequence: one
// 10-bit frame per character, one block of cfg.BlockSize samples per bit,
// mark tone for 1 and space tone for 0, with continuous phase across bit
// boundaries.
//
// Encode is the exact inverse of Decode for messages of 7-bit characters;
// anything wider returns framing.ErrCharacterTooWide.
func Encode(cfg Config, message string) ([]int16, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	frames := make([]framing.Frame, 0, len(message))
	for _, r := range message {
		frame, err := framing.EncodeRune(r)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	samples := make([]int16, 0, len(frames)*framing.FrameSize*cfg.BlockSize)
	var phase float64

	for _, frame := range frames {
		for _, bit := range frame {
			freq := cfg.SpaceFrequency
			if bit != 0 {
				freq = cfg.MarkFrequency
			}
			step := 2 * math.Pi * freq / cfg.SampleRate

			for i := 0; i < cfg.BlockSize; i++ {
				samples = append(samples, int16(encodeAmplitude*math.Sin(phase)))
				phase += step
			}
			// Keep the running phase bounded on long messages.
			phase = math.Mod(phase, 2*math.Pi)
		}
	}

	return samples, nil
}
