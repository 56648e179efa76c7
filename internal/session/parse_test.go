package session

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{"100", 100, nil},
		{"99.50", 99.5, nil},
		{"99,50", 99.5, nil},
		{"  0 ", 0, nil},
		{"-1", 0, ErrNegative},
		{"abc", 0, ErrNotNumber},
		{"", 0, ErrNotNumber},
		{"12,5,6", 0, ErrNotNumber},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseAmount(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"12", 12, nil},
		{" 0 ", 0, nil},
		{"-3", 0, ErrNegative},
		{"12.5", 0, ErrNotNumber},
		{"двенадцать", 0, ErrNotNumber},
	}
	for _, tt := range tests {
		got, err := ParseCount(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseCount(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseCount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 123456789 "); err != nil || id != 123456789 {
		t.Errorf("ParseID = %v, %v", id, err)
	}
	for _, bad := range []string{"0", "-5", "abc", ""} {
		if _, err := ParseID(bad); err == nil {
			t.Errorf("ParseID(%q) expected error", bad)
		}
	}
}
