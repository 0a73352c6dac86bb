// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/trackrate/audio"
)

// ReadSpec probes the WAV header and reports the stream format without
// decoding any audio data.  It leans on go-audio's chunk parser, which
// tolerates more header layouts than the streaming decoder accepts.
func ReadSpec(r io.ReadSeeker) (audio.Spec, error) {
	d := gowav.NewDecoder(r)
	d.ReadInfo()

	if err := d.Err(); err != nil {
		return audio.Spec{}, fmt.Errorf("%w", err)
	}

	if d.NumChans == 0 || d.SampleRate == 0 {
		return audio.Spec{}, ErrNotWavFile
	}

	encoding := audio.EncodingInt
	if d.WavAudioFormat == 3 {
		// WAVE_FORMAT_IEEE_FLOAT
		encoding = audio.EncodingFloat
	}

	return audio.Spec{
		Channels:      int(d.NumChans),
		SampleRate:    int(d.SampleRate),
		BitsPerSample: int(d.BitDepth),
		Encoding:      encoding,
	}, nil
}
