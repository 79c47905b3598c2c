// Command dcblock-play plays a test tone or a WAV file through the DC
// blocking filter in real time.
//
// Usage:
//
//	dcblock-play                          # 440 Hz tone with a DC offset
//	dcblock-play -freq 220 -offset 0.4    # custom tone
//	dcblock-play recording.wav            # play a WAV file
//
// While audio plays, commands on standard input control the filter:
//
//	bypass on | bypass off   toggle pass-through mode
//	reset                    clear the filter state
//	stats                    print input/output level statistics
//	quit                     stop playback and exit
//
// Toggling bypass while a DC offset is present produces an audible
// thump as the offset steps in and out; the filter pulls the waveform
// back to center within a fraction of a second.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-dcblock/internal/engine"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	freq := flag.Float64("freq", 440, "Tone frequency in Hz")
	amp := flag.Float64("amp", 0.5, "Tone amplitude (0..1)")
	offset := flag.Float64("offset", 0.25, "DC offset added to the tone")
	channels := flag.Int("channels", 2, "Tone channel count (1 or 2)")
	rate := flag.Int("rate", 44100, "Tone sample rate in Hz")
	bypass := flag.Bool("bypass", false, "Start with the filter bypassed")
	flag.Parse()

	var (
		src        engine.SampleSource
		sampleRate int
		chans      int
	)
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer func() { _ = f.Close() }()

		wavSrc, err := engine.NewWAVSource(wav.NewDecoder(f))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		src = wavSrc
		sampleRate = wavSrc.SampleRate()
		chans = wavSrc.Channels()
		fmt.Printf("Playing %s: %d Hz, %d channels, %d-bit\n",
			filepath.Base(args[0]), sampleRate, chans, wavSrc.BitDepth())
	} else {
		tone, err := engine.NewToneSource(*freq, float64(*rate), *amp, *offset, *channels)
		if err != nil {
			return err
		}
		src = tone
		sampleRate = *rate
		chans = *channels
		fmt.Printf("Playing %g Hz tone with %+g DC offset\n", *freq, *offset)
	}
	if chans != 1 && chans != 2 {
		return fmt.Errorf("only mono and stereo playback is supported, got %d channels", chans)
	}

	bank, err := engine.NewBank(chans)
	if err != nil {
		return err
	}
	stream := engine.NewStream(src, bank)
	stream.SetBypass(*bypass)

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: chans,
		Format:       oto.FormatFloat32LE,
	}
	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to initialize audio output: %w", err)
	}
	<-readyChan

	player := otoCtx.NewPlayer(stream)
	player.Play()
	defer func() { _ = player.Close() }()

	fmt.Println("Commands: bypass on|off, reset, stats, quit")
	return controlLoop(player, stream)
}

// controlLoop reads commands from stdin until playback ends, stdin
// closes or the user quits.
func controlLoop(player *oto.Player, stream *engine.Stream) error {
	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			switch strings.TrimSpace(line) {
			case "":
			case "bypass on":
				stream.SetBypass(true)
				fmt.Println("bypass enabled")
			case "bypass off":
				stream.SetBypass(false)
				fmt.Println("bypass disabled")
			case "reset":
				stream.RequestReset()
				fmt.Println("filter state cleared")
			case "stats":
				printLevels(stream)
			case "quit", "q":
				return nil
			default:
				fmt.Printf("unknown command: %q\n", line)
			}
		case <-ticker.C:
			if !player.IsPlaying() {
				fmt.Println("playback finished")
				return nil
			}
		}
	}
}

func printLevels(s *engine.Stream) {
	in, out := s.Levels()
	fmt.Printf("in:  DC %9.6f (%7.2f dB)  RMS %8.5f  peak %8.5f\n",
		in.DC, in.DC_dB, in.RMS, in.Peak)
	fmt.Printf("out: DC %9.6f (%7.2f dB)  RMS %8.5f  peak %8.5f\n",
		out.DC, out.DC_dB, out.RMS, out.Peak)
}
