// SPDX-License-Identifier: EPL-2.0

package bell103

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default demodulation parameters: 300 baud Bell 103 audio sampled at
// 48 kHz, 160 samples per symbol.
const (
	DefaultSampleRate = 48000.0
	DefaultBlockSize  = 160
)

// Bell 103 tone pairs in Hz.
const (
	AnsweringMarkFrequency    = 2225.0
	AnsweringSpaceFrequency   = 2025.0
	OriginatingMarkFrequency  = 1270.0
	OriginatingSpaceFrequency = 1070.0
)

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidBlockSize  = errors.New("block size must be positive")
	ErrInvalidFrequency  = errors.New("tone frequency must be positive")
	ErrUnknownPreset     = errors.New("unknown preset")
)

// Preset selects one of the two Bell 103 tone pairs. The answering modem
// transmits on the high pair, the originating modem on the low pair.
type Preset string

const (
	PresetAnswering   Preset = "answering"
	PresetOriginating Preset = "originating"
)

// IsValid reports whether p is a recognised preset.
func (p Preset) IsValid() bool {
	return p == PresetAnswering || p == PresetOriginating
}

// Frequencies returns the preset's mark and space frequencies in Hz.
func (p Preset) Frequencies() (mark, space float64) {
	if p == PresetOriginating {
		return OriginatingMarkFrequency, OriginatingSpaceFrequency
	}
	return AnsweringMarkFrequency, AnsweringSpaceFrequency
}

// Config carries the four values the decoder is parameterized by. All
// validation happens here, before any filter is constructed.
type Config struct {
	// SampleRate of the PCM input in Hz.
	SampleRate float64 `yaml:"sample_rate"`
	// BlockSize is the number of samples per symbol (one bit decision).
	BlockSize int `yaml:"block_size"`
	// MarkFrequency is the tone representing binary 1, in Hz.
	MarkFrequency float64 `yaml:"mark_frequency"`
	// SpaceFrequency is the tone representing binary 0, in Hz.
	SpaceFrequency float64 `yaml:"space_frequency"`
}

// PresetConfig returns the default configuration for one of the two Bell
// 103 tone pairs.
func PresetConfig(p Preset) (Config, error) {
	if !p.IsValid() {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}

	mark, space := p.Frequencies()
	return Config{
		SampleRate:     DefaultSampleRate,
		BlockSize:      DefaultBlockSize,
		MarkFrequency:  mark,
		SpaceFrequency: space,
	}, nil
}

// DefaultConfig returns the answering-pair configuration.
func DefaultConfig() Config {
	cfg, _ := PresetConfig(PresetAnswering)
	return cfg
}

// Validate rejects non-positive parameters. A configuration that fails
// validation is fatal to the run; nothing downstream checks again.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %v: %w", c.SampleRate, ErrInvalidSampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("block size %d: %w", c.BlockSize, ErrInvalidBlockSize)
	}
	if c.MarkFrequency <= 0 {
		return fmt.Errorf("mark frequency %v: %w", c.MarkFrequency, ErrInvalidFrequency)
	}
	if c.SpaceFrequency <= 0 {
		return fmt.Errorf("space frequency %v: %w", c.SpaceFrequency, ErrInvalidFrequency)
	}
	return nil
}

// LoadConfig reads a yaml configuration file. Omitted fields keep their
// default (answering pair) values. The result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
