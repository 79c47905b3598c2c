package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-dcblock/internal/engine"
	"github.com/cwbudde/algo-dcblock/levels"
)

// chunkFrames is the number of frames read and written per loop pass.
const chunkFrames = 8192

// wavInput bundles an open WAV file with its sample source.
type wavInput struct {
	file *os.File
	src  *engine.WAVSource
}

// openWAVInput opens and validates a WAV file.
func openWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	src, err := engine.NewWAVSource(wav.NewDecoder(f))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			src.SampleRate(), src.Channels(), src.BitDepth())
	}
	return &wavInput{file: f, src: src}, nil
}

// Close closes the input file.
func (w *wavInput) Close() error {
	return w.file.Close()
}

// channelMeters meters frame-interleaved audio one channel at a time, so
// asymmetric offsets (a common fault on stereo gear) stay visible.
type channelMeters struct {
	meters  []*levels.Meter
	scratch []float64
}

func newChannelMeters(channels, maxFrames int) *channelMeters {
	m := &channelMeters{
		meters:  make([]*levels.Meter, channels),
		scratch: make([]float64, maxFrames),
	}
	for i := range m.meters {
		m.meters[i] = levels.NewMeter()
	}
	return m
}

func (c *channelMeters) update(interleaved []float64) {
	channels := len(c.meters)
	frames := len(interleaved) / channels
	for ch, meter := range c.meters {
		for f := range frames {
			c.scratch[f] = interleaved[f*channels+ch]
		}
		meter.Update(c.scratch[:frames])
	}
}

func (c *channelMeters) results() []levels.Stats {
	out := make([]levels.Stats, len(c.meters))
	for i, m := range c.meters {
		out[i] = m.Result()
	}
	return out
}

// fileStats summarizes one processed file. in and out hold per-channel
// level statistics.
type fileStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int
	in, out  []levels.Stats
}

// processFile streams a WAV file through a per-channel filter bank and
// writes the result, gathering level statistics on both sides of the
// filter. The output keeps the input's sample rate, channel count and
// bit depth.
func processFile(inputPath, outputPath string, bypass, verbose bool) (stats *fileStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	channels := input.src.Channels()
	rate := input.src.SampleRate()
	bitDepth := input.src.BitDepth()

	bank, err := engine.NewBank(channels)
	if err != nil {
		return nil, err
	}
	bank.SetBypass(bypass)

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	enc := wav.NewEncoder(outputFile, rate, bitDepth, channels, 1)
	// Closing the encoder finalizes the WAV header, so close errors on
	// the success path must not be dropped.
	defer func() {
		if closeErr := enc.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to finalize output: %w", closeErr)
		}
		if closeErr := outputFile.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	samples := make([]float64, chunkFrames*channels)
	ints := make([]int, len(samples))
	outBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: bitDepth,
	}
	inMeters := newChannelMeters(channels, chunkFrames)
	outMeters := newChannelMeters(channels, chunkFrames)
	frames := 0
	chunks := 0

	for {
		n, err := input.src.ReadSamples(samples)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}

		inMeters.update(samples[:n])
		bank.ProcessInterleaved(samples[:n])
		outMeters.update(samples[:n])

		if err := engine.FloatToPCM(ints[:n], samples[:n], bitDepth); err != nil {
			return nil, err
		}
		outBuf.Data = ints[:n]
		if err := enc.Write(outBuf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		frames += n / channels
		chunks++
		if verbose && chunks%50 == 0 {
			log.Printf("Processed %d frames", frames)
		}
	}

	return &fileStats{
		rate:     rate,
		channels: channels,
		bitDepth: bitDepth,
		frames:   frames,
		in:       inMeters.results(),
		out:      outMeters.results(),
	}, nil
}
