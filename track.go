// SPDX-License-Identifier: EPL-2.0

package trackrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/trackrate/audio"
	"github.com/ik5/trackrate/formats/wav"
	"github.com/ik5/trackrate/utils"
)

// Config describes a single sample-rate conversion.
type Config struct {
	// InputPath is the audio file to convert.
	InputPath string

	// OutputPath receives the converted track as a 16-bit PCM WAV file.
	OutputPath string

	// Ratio is target rate / source rate.  Must be positive.
	Ratio float64

	// Taps is the sinc resampler history length in frames.  Zero selects
	// the default (audio.DefaultTaps).  Ignored for QualityCubic.
	Taps int

	// Quality selects the resampler engine.
	Quality Quality
}

// Validate reports the first configuration problem, before any I/O.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInputPath
	}
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if c.Ratio <= 0 {
		return audio.ErrInvalidRatio
	}
	return nil
}

type trackState int

const (
	stateLoaded trackState = iota
	stateConverted
)

// Track is one conversion job: an input file, its probed format, and the
// derived target format.  A Track converts exactly once.
type Track struct {
	cfg        Config
	sourceSpec audio.Spec
	targetSpec audio.Spec
	state      trackState
}

// NewTrack validates cfg, probes the input header for its format, and
// derives the target format.  An unreadable or foreign header falls back
// to the documented default (mono, 64 kHz, 16-bit int); the decode stage
// reports the real failure if the file is genuinely undecodable.
func NewTrack(cfg Config) (*Track, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	sourceSpec := probeSpec(cfg.InputPath)

	targetSpec, err := sourceSpec.Derive(cfg.Ratio)
	if err != nil {
		return nil, fmt.Errorf("derive target format: %w", err)
	}

	return &Track{
		cfg:        cfg,
		sourceSpec: sourceSpec,
		targetSpec: targetSpec,
	}, nil
}

// probeSpec reads only the WAV header.  Non-WAV and unreadable inputs
// report the default spec.
func probeSpec(path string) audio.Spec {
	f, err := os.Open(path)
	if err != nil {
		return audio.DefaultSpec()
	}
	defer f.Close()

	spec, err := wav.ReadSpec(f)
	if err != nil {
		return audio.DefaultSpec()
	}

	return spec
}

// SourceSpec returns the input format determined at construction.
func (t *Track) SourceSpec() audio.Spec { return t.sourceSpec }

// TargetSpec returns the derived output format.
func (t *Track) TargetSpec() audio.Spec { return t.targetSpec }

// InputPath returns the configured input file.
func (t *Track) InputPath() string { return t.cfg.InputPath }

// OutputPath returns the configured output file.
func (t *Track) OutputPath() string { return t.cfg.OutputPath }

// Converted reports whether Convert has completed.
func (t *Track) Converted() bool { return t.state == stateConverted }

// Convert runs the pipeline: decode the input, resample by the configured
// ratio, quantize to 16-bit PCM and write the output WAV.  A second call
// returns ErrTrackConverted.  A failure mid-write leaves the output path
// in an undefined state; the write is not atomic.
func (t *Track) Convert() error {
	if t.state == stateConverted {
		return ErrTrackConverted
	}

	f, err := os.Open(t.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	key := formatKey(t.cfg.InputPath)
	dec, ok := DefaultRegistry().Get(key)
	if !ok {
		return fmt.Errorf("open input: %w: %q", ErrUnsupportedFormat, key)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(src)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	// The decoded stream's format wins over the probed header when they
	// disagree (the probe may have fallen back to the default).
	adapter := audio.NewSliceSource(samples, src.Spec())

	var resampler audio.Source
	switch t.cfg.Quality {
	case QualityCubic:
		resampler, err = audio.NewCubicResampler(adapter, t.cfg.Ratio)
	default:
		taps := t.cfg.Taps
		if taps <= 0 {
			taps = audio.DefaultTaps
		}
		resampler, err = audio.NewSincResamplerTaps(adapter, t.cfg.Ratio, taps)
	}
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}

	converted, err := audio.ReadAll(resampler)
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}

	out, err := os.Create(t.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if err := wav.WriteWAV(out, resampler.Spec(), utils.QuantizeInt16(converted)); err != nil {
		out.Close()
		return fmt.Errorf("write output: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	t.state = stateConverted

	return nil
}

func formatKey(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
