// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Encoding describes how samples are stored on disk. Inside the pipeline
// everything is float32; the encoding only matters at the file boundaries.
type Encoding int

const (
	EncodingInt Encoding = iota
	EncodingFloat
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingInt:
		return "int"
	case EncodingFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Spec describes a PCM stream: channel count, sample rate in Hz, bit depth
// and sample encoding.
type Spec struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	Encoding      Encoding
}

// DefaultSpec is the fallback used when an input file's header cannot be
// read: mono, 64 kHz, 16-bit signed integer. A degraded but non-fatal path.
func DefaultSpec() Spec {
	return Spec{
		Channels:      1,
		SampleRate:    64000,
		BitsPerSample: 16,
		Encoding:      EncodingInt,
	}
}

// Validate reports whether the spec describes a usable stream.
func (s Spec) Validate() error {
	if s.Channels < 1 {
		return ErrNoChannels
	}
	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// Derive computes the output spec for a rate conversion by ratio
// (target rate / source rate). Channel count, bit depth and encoding are
// copied unchanged; the sample rate becomes round(rate * ratio).
//
// The ratio guard in the resampler constructors already rejects non-positive
// ratios, so the derived-rate check here is a defensive double-check.
func (s Spec) Derive(ratio float64) (Spec, error) {
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}

	out := s
	out.SampleRate = int(math.Round(float64(s.SampleRate) * ratio))
	if out.SampleRate <= 0 {
		return Spec{}, ErrInvalidRatio
	}

	return out, nil
}
