// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF containers via
// github.com/go-audio/aiff.
//
//	file, _ := os.Open("capture.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//
// Non-seekable readers are buffered in memory first, since the underlying
// parser needs random access. Only 16-bit PCM is accepted.
package aiff
