// SPDX-License-Identifier: EPL-2.0

// Command trackrate converts an audio file to a new sample rate and
// optionally plays the original and the conversion back to back.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ik5/trackrate"
	"github.com/ik5/trackrate/playback"
)

func main() {
	var (
		inputFile  = flag.String("input-file", "examples/short_melody.wav", "audio file to convert")
		outputFile = flag.String("output-file", "output.wav", "converted WAV file to write")
		ratio      = flag.Float64("ratio", 0, "sample rate ratio (target / source), required")
		taps       = flag.Int("taps", 100, "sinc resampler history length in frames")
		quality    = flag.String("quality", "sinc", "resampler quality: sinc or cubic")
		play       = flag.Float64("play", 0, "play this many seconds of both tracks after converting (0 disables)")
	)
	flag.Parse()

	if *ratio == 0 {
		fmt.Fprintln(os.Stderr, "missing required flag: -ratio")
		flag.Usage()
		os.Exit(2)
	}

	q, err := trackrate.ParseQuality(*quality)
	if err != nil {
		log.Fatalf("parse quality: %v", err)
	}

	track, err := trackrate.NewTrack(trackrate.Config{
		InputPath:  *inputFile,
		OutputPath: *outputFile,
		Ratio:      *ratio,
		Taps:       *taps,
		Quality:    q,
	})
	if err != nil {
		log.Fatalf("load track: %v", err)
	}

	log.Printf("converting %s (%d Hz) -> %s (%d Hz, %s)",
		track.InputPath(), track.SourceSpec().SampleRate,
		track.OutputPath(), track.TargetSpec().SampleRate, q)

	if err := track.Convert(); err != nil {
		log.Fatalf("convert track: %v", err)
	}

	log.Printf("wrote %s", track.OutputPath())

	if *play > 0 {
		d := time.Duration(*play * float64(time.Second))

		log.Printf("playing original and conversion for %s each", d)

		origStatus, convStatus := playback.Compare(track.InputPath(), track.OutputPath(), d)
		log.Printf("original: %s", origStatus)
		log.Printf("converted: %s", convStatus)
	}
}
