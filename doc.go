// SPDX-License-Identifier: EPL-2.0

// Package trackrate converts audio tracks between sample rates.
//
// The package orchestrates a full conversion pipeline: decode an input
// file, resample it by a configured ratio with a windowed-sinc (or cubic)
// resampler, quantize to 16-bit PCM and write the result as a WAV file.
//
// # Supported Formats
//
// Input decoding supports:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always a 16-bit PCM WAV file at the derived rate.
//
// # Quick Start
//
// A Track is one conversion job:
//
//	track, err := trackrate.NewTrack(trackrate.Config{
//	    InputPath:  "melody.wav",
//	    OutputPath: "melody_48k.wav",
//	    Ratio:      48000.0 / 44100.0,
//	})
//	if err != nil {
//	    // Handle error
//	}
//
//	if err := track.Convert(); err != nil {
//	    // Handle error
//	}
//
// NewTrack probes the input header and derives the target format up
// front; both are available before conversion via SourceSpec and
// TargetSpec.  A track converts exactly once.
//
// # Audio Processing Pipeline
//
// For more control, build pipelines directly from the audio subpackage:
//
//	// Wrap decoded samples
//	src := audio.NewSliceSource(samples, spec)
//
//	// Double the sample rate
//	resampler, err := audio.NewSincResampler(src, 2.0)
//
//	// Read converted samples
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// # Quality Tiers
//
// Two resampler engines are available:
//   - QualitySinc: band-limited windowed-sinc interpolation (default)
//   - QualityCubic: Catmull-Rom interpolation, cheaper but less accurate
//
// # Playback
//
// The playback subpackage renders tracks through the system audio device
// so an original and its conversion can be compared by ear.  It is
// diagnostic only and never affects conversion results.
//
// See the individual subpackages for more detailed documentation.
package trackrate
