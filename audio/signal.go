// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// SliceSource presents already-materialized interleaved samples as a Source.
// It is a reshaping view: each emitted frame groups spec.Channels consecutive
// samples, and no data is copied at construction.
//
// A trailing partial frame (len(samples) not a multiple of the channel
// count) is silently dropped. Decoders occasionally hand back ragged tails
// on corrupt input, and losing under one frame is preferable to failing the
// whole conversion.
//
// The source is single-pass: once drained it can only be restarted by
// wrapping the original slice again.
type SliceSource struct {
	samples []float32
	spec    Spec
	off     int
	limit   int
}

func NewSliceSource(samples []float32, spec Spec) *SliceSource {
	channels := spec.Channels
	if channels < 1 {
		channels = 1
		spec.Channels = 1
	}

	frames := len(samples) / channels

	return &SliceSource{
		samples: samples,
		spec:    spec,
		limit:   frames * channels,
	}
}

func (s *SliceSource) Spec() Spec { return s.spec }

// Frames reports how many whole frames the source holds in total.
func (s *SliceSource) Frames() int { return s.limit / s.spec.Channels }

func (s *SliceSource) Close() error { return nil }

func (s *SliceSource) ReadSamples(dst []float32) (int, error) {
	if s.off >= s.limit {
		return 0, io.EOF
	}

	// Emit whole frames only
	channels := s.spec.Channels
	n := (len(dst) / channels) * channels
	if remaining := s.limit - s.off; n > remaining {
		n = remaining
	}
	if n == 0 {
		return 0, nil
	}

	copy(dst, s.samples[s.off:s.off+n])
	s.off += n

	if s.off >= s.limit {
		return n, io.EOF
	}
	return n, nil
}
