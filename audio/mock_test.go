package audio

import (
	"io"
	"math"
)

// mockSource is a test helper that generates audio data for testing.
// It implements the Source interface and can generate various waveforms.
type mockSource struct {
	spec         Spec
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
}

// newMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		spec: Spec{
			Channels:      channels,
			SampleRate:    sampleRate,
			BitsPerSample: 16,
			Encoding:      EncodingInt,
		},
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// newSineSource creates a mock source that generates a sine wave.
func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// newConstantSource creates a mock source with constant value.
func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

func (m *mockSource) Spec() Spec   { return m.spec }
func (m *mockSource) Close() error { return nil }

// Reset resets the generated sample counter to allow re-reading
func (m *mockSource) Reset() {
	m.generated = 0
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	channels := m.spec.Channels

	// Calculate how many frames we can write
	framesRequested := len(dst) / channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := framesRequested
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	// Generate samples
	for frame := 0; frame < framesToWrite; frame++ {
		sampleIndex := m.generated + frame
		for ch := 0; ch < channels; ch++ {
			dst[frame*channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// trackingSource wraps a mock source and counts the frames handed out, so
// tests can assert single-pass consumption: a resampler that backtracked
// would need more frames than the source ever produced.
type trackingSource struct {
	inner      *mockSource
	framesRead int
}

func newTrackingSource(inner *mockSource) *trackingSource {
	return &trackingSource{inner: inner}
}

func (s *trackingSource) Spec() Spec   { return s.inner.Spec() }
func (s *trackingSource) Close() error { return s.inner.Close() }

func (s *trackingSource) ReadSamples(dst []float32) (int, error) {
	n, err := s.inner.ReadSamples(dst)
	s.framesRead += n / s.inner.spec.Channels
	return n, err
}

// corruptPacketSource simulates one undecodable packet in the middle of a
// stream: reads stop at packetStart, the error surfaces once, the packet's
// frames are dropped and reading resumes from the frame after the packet.
type corruptPacketSource struct {
	inner       *mockSource
	packetStart int
	packetLen   int
	failErr     error
	tripped     bool
}

func newCorruptPacketSource(inner *mockSource, packetStart, packetLen int, failErr error) *corruptPacketSource {
	return &corruptPacketSource{
		inner:       inner,
		packetStart: packetStart,
		packetLen:   packetLen,
		failErr:     failErr,
	}
}

func (s *corruptPacketSource) Spec() Spec   { return s.inner.Spec() }
func (s *corruptPacketSource) Close() error { return s.inner.Close() }

func (s *corruptPacketSource) ReadSamples(dst []float32) (int, error) {
	channels := s.inner.spec.Channels

	if !s.tripped {
		if s.inner.generated >= s.packetStart {
			s.tripped = true
			s.inner.generated += s.packetLen
			return 0, s.failErr
		}
		if remaining := s.packetStart - s.inner.generated; len(dst)/channels > remaining {
			return s.inner.ReadSamples(dst[:remaining*channels])
		}
	}

	return s.inner.ReadSamples(dst)
}
