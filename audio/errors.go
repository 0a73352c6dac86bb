// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidRatio rejects a zero or negative rate-conversion ratio.
	// It is returned before any sample is read from the source.
	ErrInvalidRatio = errors.New("resample ratio must be positive")

	ErrNoChannels        = errors.New("spec must have at least one channel")
	ErrInvalidSampleRate = errors.New("spec sample rate must be positive")

	// ErrCorruptPacket marks a single undecodable packet. Collect loops skip
	// it and continue with the next packet; it never aborts a conversion.
	ErrCorruptPacket = errors.New("corrupt audio packet")
)
