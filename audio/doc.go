// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core sample-rate conversion pipeline.
//
// Audio flows through the package as interleaved float32 samples grouped
// into frames (one sample per channel at a shared instant). A Source is a
// lazy, single-pass stream of frames with an attached Spec; decoders in
// the formats subpackages produce Sources, and SliceSource adapts an
// already-decoded flat sample slice into one.
//
// # Resampling
//
// SincResampler is the main engine: windowed-sinc interpolation over a
// fixed circular history (100 frames by default), driven by an arbitrary
// positive ratio of target rate to source rate:
//
//	res, err := audio.NewSincResampler(src, 1.35)
//	if err != nil {
//	    // ratio was invalid
//	}
//	buf := make([]float32, 4096)
//	n, err := res.ReadSamples(buf)
//
// CubicResampler offers a cheaper Catmull-Rom engine behind the same
// contract for voice-grade material.
//
// The resamplers never clamp or quantize; samples may transiently exceed
// [-1, 1] after interpolation and are brought into range only at the sink
// boundary (see utils.Float32ToInt16).
//
// # Spec derivation
//
// Spec.Derive computes the output format for a conversion: sample rate
// becomes round(rate * ratio), everything else is copied unchanged.
//
// # Collecting a stream
//
// ReadAll drains a Source with the decode-loop recovery policy: corrupt
// packets are skipped, stream I/O errors end the stream gracefully, and
// anything else aborts.
package audio
