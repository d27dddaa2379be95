// SPDX-License-Identifier: EPL-2.0

// Package bell103 decodes Bell 103 audio-frequency-shift-keyed signals
// carried as 16-bit PCM samples into text.
//
// A Bell 103 modem represents each bit as one of two tones (mark = 1,
// space = 0) held for one symbol period. The decoder measures both tones in
// each fixed-size block of samples with a Goertzel filter, picks the louder
// one, and reassembles the resulting bitstream into characters framed as
// one start bit, seven data bits (least significant first), and one stop
// bit.
//
// # Quick Start
//
//	cfg := bell103.DefaultConfig() // answering pair, 48 kHz, 160 samples/bit
//	message, err := bell103.Decode(cfg, samples)
//
// To decode straight from an audio file, go through a format decoder:
//
//	file, _ := os.Open("capture.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//	message, err := bell103.DecodeSource(cfg, src)
//
// DecodeSource normalizes the stream (mono, configured sample rate) before
// demodulating, so channel count and container sample rate do not have to
// match the transmission parameters.
//
// # Presets
//
// The Bell 103 standard defines two tone pairs. The answering side uses
// mark 2225 Hz / space 2025 Hz, the originating side mark 1270 Hz / space
// 1070 Hz:
//
//	cfg, err := bell103.PresetConfig(bell103.PresetOriginating)
//
// Custom frequencies, rates, and block sizes go through Config directly,
// or through a yaml file with LoadConfig.
//
// # Generating Signals
//
// Encode is the inverse pipeline, producing the sample sequence for a
// message. It exists for testing and for the bell103gen tool:
//
//	samples, err := bell103.Encode(cfg, "HELLO")
//
// # Assumptions
//
// The decoder assumes sample blocks are already aligned to symbol
// boundaries: there is no carrier acquisition, clock recovery, or frame
// resynchronization, and no error correction. The whole decode is one
// synchronous batch computation over an in-memory sample sequence.
//
// Subpackages: dsp (Goertzel filter and mark/space demodulator), framing
// (10-bit frame assembly and character extraction), audio (source
// interfaces and normalization), formats/... (wav, mp3, vorbis, aiff
// containers).
package bell103
