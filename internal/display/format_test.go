package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		want string
	}{
		{"zero", 0, "0.0 min"},
		{"episode", 42.28, "42.3 min"},
		{"exactly an hour", 60, "1h 00m"},
		{"movie", 185.4, "3h 05m"},
		{"rounds up", 119.6, "2h 00m"},
		{"a day", 24 * 60, "1d 0h"},
		{"long binge", 2*24*60 + 4*60 + 20, "2d 4h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMinutes(tt.min)
			if got != tt.want {
				t.Errorf("FormatMinutes(%v) = %q, want %q", tt.min, got, tt.want)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 records"},
		{1, "1 record"},
		{7, "7 records"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "record"); got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPrintBanner_Ascii(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ascii banner has escape codes: %q", buf.String())
	}
	if !strings.Contains(buf.String(), `\_/\_/`) {
		t.Errorf("banner art missing: %q", buf.String())
	}
}
