package playback

import "errors"

// ErrLoadFailure indicates a track could not be opened or decoded for
// playback.  It is diagnostic and never aborts a conversion.
var ErrLoadFailure = errors.New("failed to load input file")
