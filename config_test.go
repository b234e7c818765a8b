package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParsePins(t *testing.T) {
	pins, err := ParsePins(DefaultPins)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{21, 20, 16, 12, 1, 7, 8, 25, 24, 23}; !slices.Equal(pins, want) {
		t.Fatalf("pins = %v, want %v", pins, want)
	}
	if got := formatPins(pins); got != DefaultPins {
		t.Fatalf("formatPins = %q, want %q", got, DefaultPins)
	}
	if _, err := ParsePins("1,x"); err == nil {
		t.Fatalf("expected error for non-numeric pin")
	}
	if _, err := ParsePins(" , "); err == nil {
		t.Fatalf("expected error for empty pin list")
	}
}

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Count != 1 || cfg.Speed != 1 || len(cfg.Pins) != 10 || cfg.Driver != "serial" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestParseFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piezo.json")
	data := `{"count": 3, "speed": 0.5, "pins": [4, 5, 6], "pedal": true, "driver": "log"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := parseFlags([]string{"-config", path, "-s", "2", "--shiftpitch", "-3", "-P", "9,10", "a.mid", "songs"})
	if err != nil {
		t.Fatal(err)
	}
	cfg := opts.cfg
	if cfg.Count != 3 || !cfg.Pedal || cfg.Driver != "log" {
		t.Fatalf("config file values lost: %+v", cfg)
	}
	if cfg.Speed != 2 || cfg.Shift != -3 || !slices.Equal(cfg.Pins, []int{9, 10}) {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if !slices.Equal(cfg.Inputs, []string{"a.mid", "songs"}) {
		t.Fatalf("inputs = %v", cfg.Inputs)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(opts.cfg.Inputs, []string{"."}) || opts.debug {
		t.Fatalf("unexpected defaults: %+v debug=%v", opts.cfg, opts.debug)
	}
}

func TestParseFlagsValidates(t *testing.T) {
	for _, args := range [][]string{
		{"-s", "0"},
		{"-c", "0"},
		{"-P", "300"},
		{"-P", "a,b"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q): expected error", args)
		}
	}
}
