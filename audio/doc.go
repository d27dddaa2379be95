// SPDX-License-Identifier: EPL-2.0

// Package audio defines the decoded-audio contract and the normalization
// step between an audio container and the demodulator.
//
// # Source Interface
//
// All format decoders return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples
// returns io.EOF when the stream is finished.
//
// # Normalization
//
// The demodulator wants mono int16 PCM at its configured rate, whatever the
// input file contains. CollectInt16 performs the whole conversion:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, err := audio.CollectInt16(src, 48000)
//
// It drains the source, averages channels to mono, resamples with
// Catmull-Rom cubic interpolation, and converts to int16. The individual
// steps (ReadAll, DownmixMono, Resample) are exported for callers that need
// only part of the pipeline.
//
// The decode is a single bounded batch computation, so this package
// materializes samples rather than streaming them.
//
// # Format Registry
//
// The Registry lets an application pick a decoder from a format key,
// typically a file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
package audio
