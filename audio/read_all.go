// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains a Source and returns every sample it produced, applying the
// decode-loop recovery policy:
//
//   - ErrCorruptPacket: the packet is skipped and reading continues; the
//     surrounding valid packets' samples are all kept.
//   - io.ErrUnexpectedEOF: treated as normal end of stream, since many
//     decoders signal EOF through a short read on the underlying stream.
//   - io.EOF: normal termination.
//
// Any other error aborts and is returned with whatever was read so far.
func ReadAll(src Source) ([]float32, error) {
	buf := make([]float32, 4096)

	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return samples, nil
		case errors.Is(err, ErrCorruptPacket):
			// Skip the bad packet, keep decoding
		default:
			return samples, fmt.Errorf("%w", err)
		}
	}
}
