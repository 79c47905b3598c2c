// Command dcblock-wav removes DC offset from WAV audio files.
//
// Usage:
//
//	dcblock-wav input.wav output.wav
//	dcblock-wav -v input.wav output.wav        # log format and progress
//	dcblock-wav -bypass input.wav output.wav   # copy unfiltered, measure only
//
// The filter is a fixed one-pole DC blocker: frequencies above a few
// hertz pass through unchanged while any constant offset decays away.
// Level statistics for the audio before and after the filter are
// printed on completion.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bypass := flag.Bool("bypass", false, "Copy audio unfiltered (levels are still measured)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s recording.wav clean.wav     # Remove DC offset\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bypass in.wav copy.wav     # Measure levels without filtering\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]

	start := time.Now()
	stats, err := processFile(inputPath, outputPath, *bypass, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	verb := "Filtered"
	if *bypass {
		verb = "Copied"
	}
	fmt.Printf("%s %s -> %s\n", verb, filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.rate, stats.channels, stats.bitDepth, stats.frames)
	for ch := range stats.channels {
		fmt.Printf("  ch%d in:  DC %9.6f (%7.2f dB)  RMS %8.5f  peak %8.5f\n",
			ch, stats.in[ch].DC, stats.in[ch].DC_dB, stats.in[ch].RMS, stats.in[ch].Peak)
		fmt.Printf("  ch%d out: DC %9.6f (%7.2f dB)  RMS %8.5f  peak %8.5f\n",
			ch, stats.out[ch].DC, stats.out[ch].DC_dB, stats.out[ch].RMS, stats.out[ch].Peak)
	}
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.frames)/float64(stats.rate)/elapsed.Seconds())

	return nil
}
