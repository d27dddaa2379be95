// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes mono 16-bit PCM samples as a canonical 44-byte-header
// WAV file. It takes a plain io.Writer (go-audio's encoder wants a
// WriteSeeker, which rules out pipes and in-memory buffers), so the header
// is assembled up front from the known sample count.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	byteRate := uint32(sampleRate * numChannels * bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], numChannels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Write sample data in bounded chunks to keep the buffer small for
	// long captures.
	const chunkFrames = 8192
	buf := make([]byte, 0, min(len(samples), chunkFrames)*2)

	for start := 0; start < len(samples); start += chunkFrames {
		chunk := samples[start:min(start+chunkFrames, len(samples))]

		buf = buf[:len(chunk)*2]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
