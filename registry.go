// SPDX-License-Identifier: EPL-2.0

package trackrate

import (
	"github.com/ik5/trackrate/audio"
	"github.com/ik5/trackrate/formats/aiff"
	"github.com/ik5/trackrate/formats/mp3"
	"github.com/ik5/trackrate/formats/vorbis"
	"github.com/ik5/trackrate/formats/wav"
)

var defaultRegistry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}()

// DefaultRegistry returns the registry of built-in decoders, keyed by
// file extension (without the leading dot).
func DefaultRegistry() *audio.Registry { return defaultRegistry }
