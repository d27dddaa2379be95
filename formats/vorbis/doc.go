// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("capture.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//
// The library already produces interleaved float32 in [-1.0, 1.0], so this
// wrapper only adapts it to the audio.Source contract.
package vorbis
