// SPDX-License-Identifier: EPL-2.0

package trackrate

import (
	"fmt"
	"strings"
)

// Quality selects the resampler engine used by Convert.
type Quality int

const (
	// QualitySinc is the windowed-sinc resampler: band-limited
	// interpolation over a fixed history window.  The default.
	QualitySinc Quality = iota

	// QualityCubic is the Catmull-Rom resampler: four-frame cubic
	// interpolation, cheaper but less accurate.
	QualityCubic
)

func (q Quality) String() string {
	switch q {
	case QualitySinc:
		return "sinc"
	case QualityCubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// ParseQuality maps a quality name, as given on the command line, to a
// Quality.  The empty string selects the default.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(s) {
	case "", "sinc":
		return QualitySinc, nil
	case "cubic":
		return QualityCubic, nil
	default:
		return QualitySinc, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
}
