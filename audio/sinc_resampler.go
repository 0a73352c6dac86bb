// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/trackrate/utils"
)

// DefaultTaps is the history window size used by NewSincResampler.
// Larger windows improve fidelity at proportional compute cost.
const DefaultTaps = 100

// SincResampler converts a source's frame rate by an arbitrary positive
// ratio (target rate / source rate) using windowed-sinc interpolation.
// Band-limited reconstruction avoids the aliasing artifacts of naive
// nearest-neighbor or linear resampling.
//
// The resampler is pull-based and single-pass: input frames are fetched
// lazily into a fixed circular history and are never re-read. Values may
// transiently exceed [-1, 1] after interpolation (ringing near sharp
// transients); clamping is the sink's job, not done here.
type SincResampler struct {
	src      Source
	spec     Spec // derived output spec
	ratio    float64
	step     float64 // source frames per output frame (1/ratio)
	channels int
	taps     int
	half     int

	// Circular history of the most recent taps input frames. newest is the
	// absolute index of the last frame pulled; frame j lives at slot j%taps.
	ring   []float32
	newest int
	eof    bool

	// Fractional source position of the next output frame
	pos float64

	frameBuf []float32
	acc      []float64
}

// NewSincResampler creates a resampler with the default history window.
// A ratio of 1.0 is a valid no-op conversion.
func NewSincResampler(src Source, ratio float64) (*SincResampler, error) {
	return NewSincResamplerTaps(src, ratio, DefaultTaps)
}

// NewSincResamplerTaps creates a resampler with an explicit history window.
// taps is the quality/performance knob; values are clamped to [8, 512].
// A non-positive ratio is rejected before any sample is read. Very large
// upsampling ratios (beyond ~64x) are allowed but compute-intensive.
func NewSincResamplerTaps(src Source, ratio float64, taps int) (*SincResampler, error) {
	if ratio <= 0 {
		return nil, ErrInvalidRatio
	}

	spec, err := src.Spec().Derive(ratio)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if taps < 8 {
		taps = 8
	}
	if taps > 512 {
		taps = 512
	}

	channels := spec.Channels

	return &SincResampler{
		src:      src,
		spec:     spec,
		ratio:    ratio,
		step:     1 / ratio,
		channels: channels,
		taps:     taps,
		half:     taps / 2,
		ring:     make([]float32, taps*channels),
		newest:   -1,
		frameBuf: make([]float32, channels),
		acc:      make([]float64, channels),
	}, nil
}

func (r *SincResampler) Spec() Spec     { return r.spec }
func (r *SincResampler) Ratio() float64 { return r.ratio }
func (r *SincResampler) Taps() int      { return r.taps }

func (r *SincResampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one whole frame from the source into the history ring.
// A trailing partial frame is dropped. Returns io.EOF once the source is
// exhausted without a complete new frame.
func (r *SincResampler) pull() error {
	if r.eof {
		return io.EOF
	}

	filled := 0
	for filled < r.channels {
		n, err := r.src.ReadSamples(r.frameBuf[filled:r.channels])
		filled += n
		if err == io.EOF || err == io.ErrUnexpectedEOF || (n == 0 && err == nil) {
			r.eof = true
			if filled < r.channels {
				return io.EOF
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.newest++
	copy(r.ring[(r.newest%r.taps)*r.channels:], r.frameBuf[:r.channels])
	return nil
}

// ReadSamples produces interpolated samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *SincResampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		center := int(math.Floor(r.pos))

		// Pull input lazily until the window covers the next position.
		for !r.eof && r.newest < center+r.half {
			if err := r.pull(); err != nil {
				if err == io.EOF {
					break
				}
				return written * r.channels, err
			}
		}

		// Exhausted when the source is done and the next position has no
		// remaining support in history. No ragged trailing frame.
		if center > r.newest {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		r.interpolate(dst[written*r.channels:], center)
		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

// interpolate reconstructs the value at r.pos as a normalized windowed-sinc
// weighted sum over the history window. Each channel is evaluated at the
// same fractional position, so inter-channel phase stays aligned.
func (r *SincResampler) interpolate(dst []float32, center int) {
	lo := center - r.half + 1
	hi := center + r.half
	if lo < 0 {
		lo = 0
	}
	if oldest := r.newest - r.taps + 1; lo < oldest {
		lo = oldest
	}
	if hi > r.newest {
		hi = r.newest
	}

	// Downsampling lowers the filter cutoff to the output Nyquist rate.
	cutoff := 1.0
	if r.ratio < 1 {
		cutoff = r.ratio
	}

	for c := range r.acc {
		r.acc[c] = 0
	}

	var wsum float64
	for j := lo; j <= hi; j++ {
		d := r.pos - float64(j)
		w := utils.Sinc(d*cutoff) * utils.Lanczos(d, float64(r.half))
		if w == 0 {
			continue
		}
		wsum += w
		base := (j % r.taps) * r.channels
		for c := 0; c < r.channels; c++ {
			r.acc[c] += w * float64(r.ring[base+c])
		}
	}

	if wsum == 0 {
		for c := 0; c < r.channels; c++ {
			dst[c] = 0
		}
		return
	}

	for c := 0; c < r.channels; c++ {
		dst[c] = float32(r.acc[c] / wsum)
	}
}
