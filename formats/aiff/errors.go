// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a FORM/AIFF container.
	ErrNotAiffFile = errors.New("not an AIFF file")
	// ErrOnlyPCM16bitSupported indicates a bit depth other than 16.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")
	// ErrUnsupportedAiffLayout indicates a container with no usable format data.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
