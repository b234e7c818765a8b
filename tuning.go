package main

import (
	"fmt"
	"math"
)

// StretchBreakpoint is the lowest pitch that gets the stretched-tuning
// correction.
const StretchBreakpoint = 45

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func pitchName(pitch int) string {
	if pitch < 0 {
		return fmt.Sprintf("?\"%d\"", pitch)
	}
	return fmt.Sprintf("%s%d", noteNames[pitch%12], (pitch/12)-1)
}

// Hz returns the tone frequency for a MIDI pitch shifted by shift semitones.
// Pitches from StretchBreakpoint up are sharpened progressively so piezo
// upper registers sound in tune. The result is truncated, not rounded.
func Hz(pitch, shift int) int {
	base := 440 * math.Pow(2, float64(pitch+shift-69)/12)
	if pitch < StretchBreakpoint {
		return int(base)
	}
	stretch := float64(pitch-StretchBreakpoint) * 0.005
	return int(base * (stretch*stretch + 1))
}
