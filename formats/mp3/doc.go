// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer 3 audio via github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("capture.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//
// Output is always two-channel interleaved (go-mp3 upmixes mono) at the
// stream's native sample rate; the audio package normalizes both before
// demodulation. Lossy compression smears the mark/space tones, but Bell 103
// tone spacing survives typical bitrates.
package mp3
