// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM 16-bit WAV containers.
//
// Decoding goes through github.com/go-audio/wav, so non-canonical chunk
// layouts (LIST, fact, cue chunks before the data) are handled. Only 16-bit
// PCM is accepted; anything else returns ErrOnlyPCM16bitSupported.
//
//	file, _ := os.Open("capture.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// The decoder returns an audio.Source of float32 samples in [-1.0, 1.0].
// Non-seekable readers are buffered in memory first, since the underlying
// parser needs random access.
//
// WriteWAV16 is the matching writer for mono 16-bit output:
//
//	err := wav.WriteWAV16(out, 48000, samples)
package wav
