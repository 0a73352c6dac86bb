// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/trackrate"
	"github.com/ik5/trackrate/audio"
	"github.com/ik5/trackrate/utils"
)

// Status strings reported per played track.
const (
	StatusFinished   = "Finished playing track."
	StatusLoadFailed = "Failed to load input file!"
)

var (
	ctxMtx      sync.Mutex
	otoCtx      *oto.Context
	ctxRate     int
	ctxChannels int
)

// ensureContext opens the audio device on first use.  oto allows a single
// context per process, so later streams are adapted to the first stream's
// format instead of reopening the device.
func ensureContext(spec audio.Spec) (rate, channels int, err error) {
	ctxMtx.Lock()
	defer ctxMtx.Unlock()

	if otoCtx != nil {
		return ctxRate, ctxChannels, nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   spec.SampleRate,
		ChannelCount: spec.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return 0, 0, fmt.Errorf("%w", err)
	}
	<-ready

	otoCtx = ctx
	ctxRate = spec.SampleRate
	ctxChannels = spec.Channels

	return ctxRate, ctxChannels, nil
}

// adapt reshapes src to the device format.  Rate mismatches go through the
// cubic resampler (cheap enough for real time); channel mismatches are
// downmixed to mono and replicated to the device's channel count.
func adapt(src audio.Source, rate, channels int) (audio.Source, error) {
	out := src

	if out.Spec().SampleRate != rate {
		res, err := audio.NewCubicResampler(out, float64(rate)/float64(out.Spec().SampleRate))
		if err != nil {
			return nil, err
		}
		out = res
	}

	if out.Spec().Channels != channels {
		if out.Spec().Channels != 1 {
			out = audio.NewMonoMixer(out)
		}
		if channels != 1 {
			out = &replicateSource{src: out, channels: channels}
		}
	}

	return out, nil
}

// Play decodes the file at path and renders it through the audio device
// for at most d (the whole track when d <= 0).  The returned status string
// reports the outcome per track; a file that cannot be opened or decoded
// yields StatusLoadFailed together with ErrLoadFailure.
func Play(path string, d time.Duration) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return StatusLoadFailed, fmt.Errorf("%w: %s", ErrLoadFailure, path)
	}
	defer f.Close()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := trackrate.DefaultRegistry().Get(ext)
	if !ok {
		return StatusLoadFailed, fmt.Errorf("%w: unsupported format %q", ErrLoadFailure, ext)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return StatusLoadFailed, fmt.Errorf("%w: %s", ErrLoadFailure, path)
	}
	defer src.Close()

	rate, channels, err := ensureContext(src.Spec())
	if err != nil {
		return "", fmt.Errorf("open audio device: %w", err)
	}

	out, err := adapt(src, rate, channels)
	if err != nil {
		return "", fmt.Errorf("adapt stream: %w", err)
	}

	var r io.Reader = &pcmReader{src: out}
	if d > 0 {
		maxBytes := int64(d.Seconds() * float64(rate*channels*2))
		maxBytes -= maxBytes % int64(channels*2) // whole frames only
		r = io.LimitReader(r, maxBytes)
	}

	ctxMtx.Lock()
	player := otoCtx.NewPlayer(r)
	ctxMtx.Unlock()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := player.Close(); err != nil {
		return StatusFinished, fmt.Errorf("close player: %w", err)
	}

	return StatusFinished, nil
}

// Compare plays the original and converted tracks back to back so a
// conversion can be judged by ear.  Load failures are reported in the
// status strings and never abort the comparison.
func Compare(origPath, convPath string, d time.Duration) (string, string) {
	origStatus, _ := Play(origPath, d)
	convStatus, _ := Play(convPath, d)
	return origStatus, convStatus
}

// pcmReader converts a float32 source into the 16-bit little-endian PCM
// byte stream oto consumes.
type pcmReader struct {
	src audio.Source
	buf []float32
	eof bool
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}

	samples := len(p) / 2
	if samples == 0 {
		return 0, nil
	}

	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}

	n, err := r.src.ReadSamples(r.buf[:samples])
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(p[2*i:2*i+2], uint16(utils.Float32ToInt16(r.buf[i])))
	}

	if err == io.EOF || (n == 0 && err == nil) {
		r.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n * 2, nil
	}
	if err != nil {
		return n * 2, fmt.Errorf("%w", err)
	}

	return n * 2, nil
}

// replicateSource duplicates a mono stream across channels so a mono
// track can feed a stereo device.
type replicateSource struct {
	src      audio.Source
	channels int
	buf      []float32
}

func (s *replicateSource) Spec() audio.Spec {
	spec := s.src.Spec()
	spec.Channels = s.channels
	return spec
}

func (s *replicateSource) Close() error { return s.src.Close() }

func (s *replicateSource) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	if cap(s.buf) < frames {
		s.buf = make([]float32, frames)
	}

	n, err := s.src.ReadSamples(s.buf[:frames])
	for i := 0; i < n; i++ {
		for c := 0; c < s.channels; c++ {
			dst[i*s.channels+c] = s.buf[i]
		}
	}

	return n * s.channels, err
}
