package main

import "errors"

var (
	ErrSpeed      = errors.New("speed multiplier must be positive")
	ErrResolution = errors.New("ticks per quarter note must be positive")
)

// NoteEvent is a note-on or note-off with the real time, in seconds, since
// the previous note event.
type NoteEvent struct {
	Delta float64
	On    bool
	Pitch int
}

// Timeline is the time-scaled note list of one track.
type Timeline struct {
	Notes     []NoteEvent
	Length    float64 // seconds, including trailing non-note events
	NoteCount int
}

// ScaleTime converts absolute ticks into seconds between note events.
//
// Tempo is zero until the first tempo event, so ticks before it take no
// time. A tempo change applies from the next event on. Events must already be
// in tick order.
func ScaleTime(s Stream, speed float64) (Timeline, error) {
	if speed <= 0 {
		return Timeline{}, ErrSpeed
	}
	if s.Resolution <= 0 {
		return Timeline{}, ErrResolution
	}

	var (
		tl       Timeline
		tempo    float64
		prevTick int64
		since    float64
	)
	tpq := float64(s.Resolution)
	for _, e := range s.Events {
		delta := tempo * float64(e.Tick-prevTick) / speed / tpq / 1_000_000
		prevTick = e.Tick
		since += delta
		tl.Length += delta

		switch {
		case e.Kind == KindTempo:
			tempo = float64(e.Data1)
		case e.IsNoteOn():
			tl.Notes = append(tl.Notes, NoteEvent{Delta: since, On: true, Pitch: e.Data1})
			since = 0
			tl.NoteCount++
		case e.IsNoteOff():
			tl.Notes = append(tl.Notes, NoteEvent{Delta: since, On: false, Pitch: e.Data1})
			since = 0
		}
	}
	return tl, nil
}
