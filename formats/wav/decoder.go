package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/trackrate/audio"
)

type wavSource struct {
	r    io.Reader
	spec audio.Spec
	buf  []byte
}

func (s *wavSource) Spec() audio.Spec { return s.spec }
func (s *wavSource) Close() error     { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Read interleaved int16 frames, convert to float32
	if len(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}

	n, err := io.ReadFull(s.r, s.buf[:len(dst)*2])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = float32(v) / 32768.0
	}

	if err != nil {
		// Data chunk exhausted: deliver what we have with EOF
		return samples, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

// Decode parses the RIFF chunk list up to the data chunk and returns a
// streaming source over its PCM 16-bit payload.  Unknown chunks are
// skipped, including their word-alignment padding.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var spec audio.Spec
	sawFmt := false

	var hdr [8]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingDataChunk
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}

			chunk := make([]byte, size)
			if _, err := io.ReadFull(r, chunk); err != nil {
				return nil, fmt.Errorf("%w", err)
			}

			format := binary.LittleEndian.Uint16(chunk[0:2])
			spec = audio.Spec{
				Channels:      int(binary.LittleEndian.Uint16(chunk[2:4])),
				SampleRate:    int(binary.LittleEndian.Uint32(chunk[4:8])),
				BitsPerSample: int(binary.LittleEndian.Uint16(chunk[14:16])),
				Encoding:      audio.EncodingInt,
			}

			if format != 1 || spec.BitsPerSample != 16 {
				return nil, ErrOnlyPCM16bitSupported
			}

			sawFmt = true
		case "data":
			if !sawFmt {
				return nil, ErrUnsupportedWavLayout
			}

			return &wavSource{
				r:    io.LimitReader(r, int64(size)),
				spec: spec,
				buf:  make([]byte, 4096),
			}, nil
		default:
			skip := int64(size)
			if size%2 == 1 {
				skip++ // chunks are word aligned
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
		}
	}
}
