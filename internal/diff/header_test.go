package diff

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Hunk
	}{
		{
			name:   "BothCounts",
			header: "-8,1 +8,1",
			want:   Hunk{Removal: Span{Start: 8, Count: 1}, Addition: Span{Start: 8, Count: 1}},
		},
		{
			name:   "PureAddition",
			header: "-0,0 +5,1",
			want:   Hunk{Removal: Span{Start: 0, Count: 0}, Addition: Span{Start: 5, Count: 1}},
		},
		{
			name:   "OmittedCountsDefaultToOne",
			header: "-5 +5",
			want:   Hunk{Removal: Span{Start: 5, Count: 1}, Addition: Span{Start: 5, Count: 1}},
		},
		{
			name:   "MixedOmission",
			header: "-13 +27,5",
			want:   Hunk{Removal: Span{Start: 13, Count: 1}, Addition: Span{Start: 27, Count: 5}},
		},
		{
			name:   "Shrink",
			header: "-10,3 +10,1",
			want:   Hunk{Removal: Span{Start: 10, Count: 3}, Addition: Span{Start: 10, Count: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.header)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseHeader(%q) = %+v, expected %+v", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseHeader_Malformed(t *testing.T) {
	headers := []string{
		"",
		"garbage",
		"-1",
		"+1 -2",
		"-a,1 +2",
		"-1,b +2",
		"-1 2",
		"-1,2+3",
		" -1 +2",
		"-1 +2 ",
		"-1  +2",
		"-1,2 +3,4 extra",
		"--1 +2",
	}

	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			_, err := ParseHeader(header)
			if err == nil {
				t.Fatalf("ParseHeader(%q): expected error, got nil", header)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseHeader(%q): expected *ParseError, got %T", header, err)
			}
			if parseErr.Header != header {
				t.Errorf("ParseError.Header = %q, expected %q", parseErr.Header, header)
			}
		})
	}
}
