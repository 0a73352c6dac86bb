package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/trackrate/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	spec     audio.Spec
	frameBuf []float32 // buffer for reading frames from decoder
}

func (s *source) Spec() audio.Spec { return s.spec }
func (s *source) Close() error     { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.spec.Channels

	// oggvorbis.Reader.Read() expects a buffer sized in frames (not samples)
	// and returns the number of frames read
	framesRequested := len(dst) / channels

	if cap(s.frameBuf) < framesRequested*channels {
		s.frameBuf = make([]float32, framesRequested*channels)
	}
	s.frameBuf = s.frameBuf[:framesRequested*channels]

	framesRead, err := s.dec.Read(s.frameBuf)
	if framesRead == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samplesRead := framesRead * channels
	copy(dst, s.frameBuf[:samplesRead])

	return samplesRead, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec: dec,
		spec: audio.Spec{
			Channels:      dec.Channels(),
			SampleRate:    dec.SampleRate(),
			BitsPerSample: 32,
			Encoding:      audio.EncodingFloat,
		},
		frameBuf: make([]float32, 4096),
	}, nil
}
