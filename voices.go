package main

import (
	"errors"
	"slices"
)

var ErrNoChannels = errors.New("no output channels configured")

// Voice is one channel currently sounding one pitch.
type Voice struct {
	Channel int
	Pitch   int
}

// Command sets a channel to a frequency after waiting Delay seconds.
// Hz 0 silences the channel.
type Command struct {
	Delay   float64
	Channel int
	Hz      int
}

// Allocator fits any number of simultaneous notes onto a fixed list of
// channels. When all but one channel are busy the oldest voice is stolen;
// its note-off, when it arrives, is swallowed and its delay carried forward.
//
// An Allocator holds the state of one track and is not safe for concurrent
// use.
type Allocator struct {
	channels []int
	shift    int

	sounding []Voice // oldest first
	stolen   []int   // pitches whose channel was taken before their note-off
	pending  float64 // delay of swallowed events not yet emitted
	steals   int
}

// NewAllocator returns an allocator over channels, preferred in the given
// order. shift transposes every emitted frequency.
func NewAllocator(channels []int, shift int) (*Allocator, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	return &Allocator{
		channels: slices.Clone(channels),
		shift:    shift,
	}, nil
}

// Allocate maps notes onto commands. It can be called more than once; state
// carries over between calls.
func (a *Allocator) Allocate(notes []NoteEvent) []Command {
	out := make([]Command, 0, len(notes))
	for _, n := range notes {
		var (
			cmd Command
			ok  bool
		)
		if n.On {
			cmd, ok = a.noteOn(n)
		} else {
			cmd, ok = a.noteOff(n)
		}
		if ok {
			out = append(out, cmd)
		}
	}
	return out
}

// Stolen returns how many voices have been stolen so far.
func (a *Allocator) Stolen() int { return a.steals }

// Sounding returns a copy of the live voices, oldest first.
func (a *Allocator) Sounding() []Voice { return slices.Clone(a.sounding) }

func (a *Allocator) emit(delay float64, channel, hz int) Command {
	c := Command{Delay: delay + a.pending, Channel: channel, Hz: hz}
	a.pending = 0
	return c
}

func (a *Allocator) noteOn(n NoteEvent) (Command, bool) {
	hz := Hz(n.Pitch, a.shift)

	// One channel is kept in reserve: stealing starts once N-1 are busy.
	if len(a.sounding) > 0 && len(a.sounding) >= len(a.channels)-1 {
		victim := a.sounding[0]
		a.sounding = append(a.sounding[1:], Voice{Channel: victim.Channel, Pitch: n.Pitch})
		a.stolen = append(a.stolen, victim.Pitch)
		a.steals++
		logger.Debug("voices: channel stolen",
			"channel", victim.Channel,
			"victim_pitch", pitchName(victim.Pitch),
			"new_pitch", pitchName(n.Pitch),
			"hz", hz,
		)
		return a.emit(n.Delta, victim.Channel, hz), true
	}

	for _, ch := range a.channels {
		if a.busy(ch) {
			continue
		}
		a.sounding = append(a.sounding, Voice{Channel: ch, Pitch: n.Pitch})
		logger.Debug("voices: channel assigned", "channel", ch, "pitch", pitchName(n.Pitch), "hz", hz)
		return a.emit(n.Delta, ch, hz), true
	}

	// Unreachable with the reserve above, but keep the time if it happens.
	logger.Warn("voices: no free channel, dropping note", "pitch", pitchName(n.Pitch))
	a.pending += n.Delta
	return Command{}, false
}

func (a *Allocator) noteOff(n NoteEvent) (Command, bool) {
	if i := slices.Index(a.stolen, n.Pitch); i >= 0 {
		a.stolen = slices.Delete(a.stolen, i, i+1)
		a.pending += n.Delta
		logger.Debug("voices: note-off of stolen voice swallowed", "pitch", pitchName(n.Pitch), "pending", a.pending)
		return Command{}, false
	}

	i := slices.IndexFunc(a.sounding, func(v Voice) bool { return v.Pitch == n.Pitch })
	if i < 0 {
		logger.Debug("voices: note-off for unknown pitch ignored", "pitch", pitchName(n.Pitch))
		a.pending += n.Delta
		return Command{}, false
	}
	ch := a.sounding[i].Channel
	a.sounding = slices.Delete(a.sounding, i, i+1)
	return a.emit(n.Delta, ch, 0), true
}

func (a *Allocator) busy(ch int) bool {
	for _, v := range a.sounding {
		if v.Channel == ch {
			return true
		}
	}
	return false
}
