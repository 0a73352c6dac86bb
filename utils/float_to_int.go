// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 quantizes a float32 sample to signed 16-bit PCM.
// Values outside [-1, 1] are clamped; quantization happens only at the
// output boundary, never inside the resampling pipeline.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// QuantizeInt16 converts a whole interleaved float32 buffer to 16-bit PCM.
func QuantizeInt16(samples []float32) []int16 {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = Float32ToInt16(s)
	}
	return pcm
}
