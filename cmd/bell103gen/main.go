// SPDX-License-Identifier: EPL-2.0

// bell103gen modulates a text message into a Bell 103 AFSK WAV file, the
// counterpart of bell103dec for producing test transmissions.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/belldec/bell103"
	"github.com/belldec/bell103/formats/wav"
)

func main() {
	preset := pflag.StringP("preset", "p", string(bell103.PresetAnswering),
		"Bell 103 tone pair: answering (2225/2025 Hz) or originating (1270/1070 Hz).")
	rate := pflag.Float64P("rate", "r", 0, "Sample rate override in Hz.")
	blockSize := pflag.IntP("block-size", "b", 0, "Samples per symbol override.")
	output := pflag.StringP("output", "o", "message.wav", "Output WAV file.")
	help := pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] [MESSAGE...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Modulate a message into a Bell 103 AFSK WAV file.\n")
		fmt.Fprintf(os.Stderr, "With no MESSAGE arguments the text is read from stdin.\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	cfg, err := bell103.PresetConfig(bell103.Preset(*preset))
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}
	if *rate != 0 {
		cfg.SampleRate = *rate
	}
	if *blockSize != 0 {
		cfg.BlockSize = *blockSize
	}

	message := strings.Join(pflag.Args(), " ")
	if message == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("Reading stdin failed", "err", err)
		}
		message = string(data)
	}

	samples, err := bell103.Encode(cfg, message)
	if err != nil {
		log.Fatal("Encode failed", "err", err)
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatal("Creating output failed", "file", *output, "err", err)
	}
	defer file.Close()

	if err := wav.WriteWAV16(file, int(cfg.SampleRate), samples); err != nil {
		log.Fatal("Writing WAV failed", "file", *output, "err", err)
	}

	log.Info("Transmission written", "file", *output,
		"characters", len(message), "samples", len(samples),
		"seconds", fmt.Sprintf("%.2f", float64(len(samples))/cfg.SampleRate))
}
