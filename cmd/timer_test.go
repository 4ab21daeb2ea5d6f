package cmd

import "testing"

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{90, "01:30"},
		{1500, "25:00"},
	}
	for _, tt := range tests {
		if got := formatCountdown(tt.seconds); got != tt.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
