package trackrate

import "errors"

var (
	// ErrNoInputPath indicates the configuration is missing an input file
	ErrNoInputPath = errors.New("input path must not be empty")

	// ErrNoOutputPath indicates the configuration is missing an output file
	ErrNoOutputPath = errors.New("output path must not be empty")

	// ErrTrackConverted indicates Convert was called on an already
	// converted track
	ErrTrackConverted = errors.New("track already converted")

	// ErrUnsupportedFormat indicates no decoder is registered for the
	// input file's extension
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrInvalidQuality indicates an unknown resampler quality name
	ErrInvalidQuality = errors.New("invalid resampler quality")
)
