// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belldec/bell103"
	"github.com/belldec/bell103/formats/wav"
)

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	t.Run("preset", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig("", "originating", 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1270.0, cfg.MarkFrequency)
		assert.Equal(t, 1070.0, cfg.SpaceFrequency)
		assert.Equal(t, bell103.DefaultSampleRate, cfg.SampleRate)
	})

	t.Run("flag overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := resolveConfig("", "answering", 8000, 205, 1600, 1800)
		require.NoError(t, err)
		assert.Equal(t, 8000.0, cfg.SampleRate)
		assert.Equal(t, 205, cfg.BlockSize)
		assert.Equal(t, 1600.0, cfg.MarkFrequency)
		assert.Equal(t, 1800.0, cfg.SpaceFrequency)
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()

		_, err := resolveConfig("", "v21", 0, 0, 0, 0)
		assert.ErrorIs(t, err, bell103.ErrUnknownPreset)
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Parallel()

		_, err := resolveConfig("", "answering", -1, 0, 0, 0)
		assert.ErrorIs(t, err, bell103.ErrInvalidSampleRate)
	})
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	cfg := bell103.DefaultConfig()

	samples, err := bell103.Encode(cfg, "END TO END")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "capture.wav")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, wav.WriteWAV16(file, int(cfg.SampleRate), samples))
	require.NoError(t, file.Close())

	message, err := decodeFile(newRegistry(), cfg, path)
	require.NoError(t, err)
	assert.Equal(t, "END TO END", message)
}

func TestDecodeFileUnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capture.flac")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := decodeFile(newRegistry(), bell103.DefaultConfig(), path)
	assert.ErrorContains(t, err, "unsupported format")
}
