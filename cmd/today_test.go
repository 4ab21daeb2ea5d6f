package cmd

import (
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{9, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}
	for _, tt := range tests {
		now := time.Date(2024, 1, 3, tt.hour, 0, 0, 0, time.UTC)
		if got := greeting(now); got != tt.want {
			t.Errorf("greeting(hour %d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{0, "[----------]"},
		{50, "[#####-----]"},
		{100, "[##########]"},
		{33, "[###-------]"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.percentage, 10); got != tt.want {
			t.Errorf("progressBar(%d, 10) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}
