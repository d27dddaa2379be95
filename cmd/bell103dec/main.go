// SPDX-License-Identifier: EPL-2.0

// bell103dec decodes a Bell 103 AFSK transmission from an audio file and
// prints the recovered message.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/belldec/bell103"
	"github.com/belldec/bell103/audio"
	"github.com/belldec/bell103/formats/aiff"
	"github.com/belldec/bell103/formats/mp3"
	"github.com/belldec/bell103/formats/vorbis"
	"github.com/belldec/bell103/formats/wav"
)

// newRegistry maps file extensions to the supported container decoders.
func newRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("oga", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})
	return registry
}

func main() {
	preset := pflag.StringP("preset", "p", string(bell103.PresetAnswering),
		"Bell 103 tone pair: answering (2225/2025 Hz) or originating (1270/1070 Hz).")
	rate := pflag.Float64P("rate", "r", 0, "Sample rate override in Hz.")
	blockSize := pflag.IntP("block-size", "b", 0, "Samples per symbol override.")
	mark := pflag.Float64("mark", 0, "Mark (binary 1) frequency override in Hz.")
	space := pflag.Float64("space", 0, "Space (binary 0) frequency override in Hz.")
	configPath := pflag.StringP("config", "c", "", "Read decoder parameters from a yaml file.")
	output := pflag.StringP("output", "o", "", "Write the message to this file instead of stdout.")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug logging.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <AUDIO_FILE>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decode a Bell 103 AFSK transmission from an audio file.\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if len(pflag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Exactly one audio file required - got %v\n\n", pflag.Args())
		pflag.Usage()
		os.Exit(1)
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := resolveConfig(*configPath, *preset, *rate, *blockSize, *mark, *space)
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}
	log.Debug("Decoder configured",
		"rate", cfg.SampleRate, "blockSize", cfg.BlockSize,
		"mark", cfg.MarkFrequency, "space", cfg.SpaceFrequency)

	path := pflag.Arg(0)
	message, err := decodeFile(newRegistry(), cfg, path)
	if err != nil {
		log.Fatal("Decode failed", "file", path, "err", err)
	}
	log.Debug("Decoded message", "characters", len(message))

	if *output == "" {
		fmt.Println(message)
		return
	}
	if err := os.WriteFile(*output, []byte(message), 0o644); err != nil {
		log.Fatal("Writing output failed", "file", *output, "err", err)
	}
	log.Info("Message written", "file", *output, "characters", len(message))
}

// resolveConfig builds the decoder configuration from (in order of
// precedence) individual flag overrides, a yaml config file, and the
// selected preset.
func resolveConfig(configPath, preset string, rate float64, blockSize int, mark, space float64) (bell103.Config, error) {
	var cfg bell103.Config
	var err error

	if configPath != "" {
		cfg, err = bell103.LoadConfig(configPath)
	} else {
		cfg, err = bell103.PresetConfig(bell103.Preset(preset))
	}
	if err != nil {
		return bell103.Config{}, err
	}

	if rate != 0 {
		cfg.SampleRate = rate
	}
	if blockSize != 0 {
		cfg.BlockSize = blockSize
	}
	if mark != 0 {
		cfg.MarkFrequency = mark
	}
	if space != 0 {
		cfg.SpaceFrequency = space
	}

	return cfg, cfg.Validate()
}

// decodeFile opens the audio file, picks a decoder by extension, and runs
// the decode pipeline.
func decodeFile(registry *audio.Registry, cfg bell103.Config, path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	decoder, ok := registry.Get(ext)
	if !ok {
		return "", fmt.Errorf("unsupported format %q (supported: %s)",
			ext, strings.Join(registry.Formats(), ", "))
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	src, err := decoder.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	log.Debug("Audio opened", "file", path, "rate", src.SampleRate(), "channels", src.Channels())

	return bell103.DecodeSource(cfg, src)
}
