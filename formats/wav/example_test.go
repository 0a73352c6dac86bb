// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/trackrate/audio"
	"github.com/ik5/trackrate/formats/wav"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	// Create a sample WAV file
	spec := audio.Spec{Channels: 1, SampleRate: 16000, BitsPerSample: 16, Encoding: audio.EncodingInt}
	samples := []int16{100, 200, 300, 400, 500}
	wavData := new(bytes.Buffer)
	wav.WriteWAV(wavData, spec, samples)

	// Decode the WAV file
	decoder := wav.Decoder{}
	source, err := decoder.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	// Check audio properties
	fmt.Printf("Sample rate: %d Hz\n", source.Spec().SampleRate)
	fmt.Printf("Channels: %d\n", source.Spec().Channels)

	// Read samples
	buf := make([]float32, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples\n", n)
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples
}

// Example_encoding demonstrates writing a WAV file.
func Example_encoding() {
	// Generate audio samples (simple sawtooth-like pattern)
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	// Write to buffer (in real code, use os.Create)
	spec := audio.Spec{Channels: 1, SampleRate: 8000, BitsPerSample: 16, Encoding: audio.EncodingInt}
	output := new(bytes.Buffer)
	err := wav.WriteWAV(output, spec, samples)
	if err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	fmt.Printf("Header: 44 bytes\n")
	fmt.Printf("Data: %d bytes (%d samples × 2 bytes)\n", len(samples)*2, len(samples))
	// Output:
	// Wrote 2044 bytes
	// Header: 44 bytes
	// Data: 2000 bytes (1000 samples × 2 bytes)
}

// Example_probing demonstrates reading only the header of a WAV file.
func Example_probing() {
	spec := audio.Spec{Channels: 2, SampleRate: 44100, BitsPerSample: 16, Encoding: audio.EncodingInt}
	samples := make([]int16, 44100*2)
	wavData := new(bytes.Buffer)
	wav.WriteWAV(wavData, spec, samples)

	probed, err := wav.ReadSpec(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("Probe error: %v\n", err)
		return
	}

	fmt.Printf("Channels: %d\n", probed.Channels)
	fmt.Printf("Sample rate: %d Hz\n", probed.SampleRate)
	fmt.Printf("Bit depth: %d\n", probed.BitsPerSample)
	fmt.Printf("Encoding: %s\n", probed.Encoding)
	// Output:
	// Channels: 2
	// Sample rate: 44100 Hz
	// Bit depth: 16
	// Encoding: int
}

// Example_roundTrip shows encoding and then decoding.
func Example_roundTrip() {
	// Original samples
	original := []int16{-1000, -500, 0, 500, 1000}

	// Encode to WAV
	spec := audio.Spec{Channels: 1, SampleRate: 8000, BitsPerSample: 16, Encoding: audio.EncodingInt}
	wavData := new(bytes.Buffer)
	err := wav.WriteWAV(wavData, spec, original)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	// Decode back
	decoder := wav.Decoder{}
	source, err := decoder.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	// Read samples
	buf := make([]float32, len(original))
	n, _ := source.ReadSamples(buf)

	// Convert back to int16 for comparison
	recovered := make([]int16, n)
	for i := 0; i < n; i++ {
		recovered[i] = int16(buf[i] * 32768.0)
	}

	fmt.Println("Round-trip successful:")
	fmt.Printf("Original:  %v\n", original)
	fmt.Printf("Recovered: %v\n", recovered)
	// Output:
	// Round-trip successful:
	// Original:  [-1000 -500 0 500 1000]
	// Recovered: [-1000 -500 0 500 1000]
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	// Try to decode non-WAV data
	invalidData := bytes.NewReader([]byte("This is not a WAV file"))

	decoder := wav.Decoder{}
	_, err := decoder.Decode(invalidData)

	if err == wav.ErrNotWavFile {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

// Example_streamingRead demonstrates reading a WAV file in chunks.
func Example_streamingRead() {
	// Create a WAV file
	spec := audio.Spec{Channels: 1, SampleRate: 8000, BitsPerSample: 16, Encoding: audio.EncodingInt}
	samples := make([]int16, 10000)
	wavData := new(bytes.Buffer)
	wav.WriteWAV(wavData, spec, samples)

	// Decode
	decoder := wav.Decoder{}
	source, _ := decoder.Decode(wavData)

	// Read in chunks
	buf := make([]float32, 1000) // Read 1000 samples at a time
	chunks := 0
	totalSamples := 0

	for {
		n, err := source.ReadSamples(buf)
		if n > 0 {
			chunks++
			totalSamples += n
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
	}

	fmt.Printf("Read %d samples in %d chunks\n", totalSamples, chunks)
	// Output:
	// Read 10000 samples in 10 chunks
}
