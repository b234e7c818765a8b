package main

import (
	"strings"
	"testing"
)

func TestStatsString(t *testing.T) {
	s := Stats{Notes: 200, Length: 90, Sustained: 10, Stolen: 5}
	want := "playing 200 notes for 1.50 minutes, with 5 (2.5%) bad offs and 10 (5.0%) sustained notes"
	if got := s.String(); got != want {
		t.Fatalf("stats = %q, want %q", got, want)
	}
	if got := (Stats{}).String(); !strings.Contains(got, "0 (0.0%) bad offs") {
		t.Fatalf("empty stats = %q", got)
	}
	if got := s.HumanLength(); !strings.Contains(got, "1") || !strings.Contains(got, "30") {
		t.Fatalf("human length = %q, want 1 minute 30 seconds", got)
	}
}

func TestStatsRenderKeepsNumbers(t *testing.T) {
	got := Stats{Notes: 4, Length: 30, Stolen: 1}.Render()
	for _, part := range []string{"playing", "4 notes", "0.50 minutes", "1 (25.0%) bad offs", "0 (0.0%) sustained"} {
		if !strings.Contains(got, part) {
			t.Fatalf("render = %q, missing %q", got, part)
		}
	}
}
