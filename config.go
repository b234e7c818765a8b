package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const DefaultPins = "21,20,16,12,1,7,8,25,24,23"

// Config holds everything a run needs. A JSON file can provide defaults;
// flags override it.
type Config struct {
	Inputs       []string `json:"inputs,omitempty"`
	Count        int      `json:"count"`
	Speed        float64  `json:"speed"`
	Shift        int      `json:"shift"`
	Pedal        bool     `json:"pedal"`
	Quiet        bool     `json:"quiet"`
	Pins         []int    `json:"pins"`
	Driver       string   `json:"driver"`
	SerialDevice string   `json:"serial"`
	Baud         int      `json:"baud"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	pins, _ := ParsePins(DefaultPins)
	return &Config{
		Inputs:       []string{"."},
		Count:        1,
		Speed:        1,
		Pins:         pins,
		Driver:       "serial",
		SerialDevice: "/dev/ttyACM0",
		Baud:         500000,
	}
}

// LoadConfig reads a JSON config over the defaults. A missing file is not an
// error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values the pipeline cannot work without.
func (c *Config) Validate() error {
	var errs []error
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be > 0, got %v", c.Speed))
	}
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be >= 1, got %d", c.Count))
	}
	if len(c.Pins) == 0 {
		errs = append(errs, ErrNoChannels)
	}
	for _, p := range c.Pins {
		if p < 0 || p > 255 {
			errs = append(errs, fmt.Errorf("pin %d out of range 0-255", p))
		}
	}
	return errors.Join(errs...)
}

// ParsePins parses a comma separated pin list such as "21,20,16".
func ParsePins(s string) ([]int, error) {
	var pins []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("pins: %q is not a number", f)
		}
		pins = append(pins, n)
	}
	if len(pins) == 0 {
		return nil, ErrNoChannels
	}
	return pins, nil
}

func formatPins(pins []int) string {
	s := make([]string, len(pins))
	for i, p := range pins {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ",")
}
