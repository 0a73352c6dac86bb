// SPDX-License-Identifier: EPL-2.0

package trackrate

import (
	"errors"
	"testing"
)

func TestQuality_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quality Quality
		want    string
	}{
		{QualitySinc, "sinc"},
		{QualityCubic, "cubic"},
		{Quality(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.quality.String(); got != tt.want {
			t.Errorf("Quality(%d).String() = %q, want %q", int(tt.quality), got, tt.want)
		}
	}
}

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Quality
		wantErr error
	}{
		{
			name:  "sinc",
			input: "sinc",
			want:  QualitySinc,
		},
		{
			name:  "cubic",
			input: "cubic",
			want:  QualityCubic,
		},
		{
			name:  "empty selects default",
			input: "",
			want:  QualitySinc,
		},
		{
			name:  "case insensitive",
			input: "Cubic",
			want:  QualityCubic,
		},
		{
			name:    "unknown",
			input:   "linear",
			wantErr: ErrInvalidQuality,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseQuality(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseQuality(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseQuality(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
