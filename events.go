package main

import (
	"fmt"
	"slices"
)

// PercussionChannel is the 0-based index of MIDI channel 10.
const PercussionChannel = 9

// SustainController is the MIDI controller number of the damper pedal.
const SustainController = 64

type EventKind int

const (
	KindOther EventKind = iota
	KindNoteOn
	KindNoteOff
	KindControlChange
	KindTempo
)

func (k EventKind) String() string {
	switch k {
	case KindNoteOn:
		return "NoteOn"
	case KindNoteOff:
		return "NoteOff"
	case KindControlChange:
		return "ControlChange"
	case KindTempo:
		return "Tempo"
	}
	return "Other"
}

// RawEvent is one decoded MIDI event at an absolute tick.
//
// Data1 holds the key for note events, the controller number for control
// changes and the microseconds per quarter note for tempo events. Data2 holds
// the velocity or controller value. Meta events carry Channel -1.
type RawEvent struct {
	Tick    int64
	Kind    EventKind
	Channel int
	Data1   int
	Data2   int
}

// IsNoteOn reports a sounding note-on (velocity > 0).
func (e RawEvent) IsNoteOn() bool {
	return e.Kind == KindNoteOn && e.Data2 > 0
}

// IsNoteOff reports a note-off or a zero-velocity note-on.
func (e RawEvent) IsNoteOff() bool {
	return e.Kind == KindNoteOff || (e.Kind == KindNoteOn && e.Data2 == 0)
}

// IsSustain reports a damper pedal control change.
func (e RawEvent) IsSustain() bool {
	return e.Kind == KindControlChange && e.Data1 == SustainController
}

func (e RawEvent) String() string {
	return fmt.Sprintf("%d %s ch%d %d %d", e.Tick, e.Kind, e.Channel, e.Data1, e.Data2)
}

// Stream is a decoded file: its events plus the ticks-per-quarter-note
// resolution that applies to all of them.
type Stream struct {
	Resolution int
	Events     []RawEvent
}

// Normalize returns the events ordered by tick with percussion removed.
// Ties keep their decode order, but nothing downstream depends on that.
func Normalize(events []RawEvent) []RawEvent {
	out := make([]RawEvent, 0, len(events))
	for _, e := range events {
		if e.Channel == PercussionChannel {
			continue
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b RawEvent) int {
		switch {
		case a.Tick < b.Tick:
			return -1
		case a.Tick > b.Tick:
			return 1
		}
		return 0
	})
	return out
}
