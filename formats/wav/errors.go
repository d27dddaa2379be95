// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE container.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrOnlyPCM16bitSupported indicates a format other than PCM 16-bit.
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	// ErrUnsupportedWavLayout indicates a container with no usable format chunk.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
