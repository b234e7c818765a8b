package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrTimeFormat = errors.New("midi: only metric (ticks per quarter note) time format is supported")

// ReadMIDIFile decodes a Standard MIDI File into a single stream.
func ReadMIDIFile(path string) (Stream, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Stream{}, fmt.Errorf("midi: %w", err)
	}
	logger.Info("midi: importing file", "path", path, "size", humanize.Bytes(uint64(fi.Size())))

	s, err := smf.ReadFile(path)
	if err != nil {
		return Stream{}, fmt.Errorf("midi: read %s: %w", path, err)
	}
	return decodeSMF(s)
}

// decodeSMF flattens all tracks into absolute-tick events, track by track.
func decodeSMF(s *smf.SMF) (Stream, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return Stream{}, ErrTimeFormat
	}

	st := Stream{Resolution: int(ticks.Resolution())}
	for ti, tr := range s.Tracks {
		var abs int64
		for _, ev := range tr {
			abs += int64(ev.Delta)
			st.Events = append(st.Events, decodeMessage(abs, ev.Message))
		}
		logger.Debug("midi: track decoded", "track", ti, "events", len(tr), "end_tick", abs)
	}
	return st, nil
}

func decodeMessage(tick int64, msg smf.Message) RawEvent {
	var (
		ch, key, vel, ctl, val uint8
		bpm                    float64
	)
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		return RawEvent{Tick: tick, Kind: KindNoteOn, Channel: int(ch), Data1: int(key), Data2: int(vel)}
	case msg.GetNoteEnd(&ch, &key):
		return RawEvent{Tick: tick, Kind: KindNoteOff, Channel: int(ch), Data1: int(key)}
	case msg.GetControlChange(&ch, &ctl, &val):
		return RawEvent{Tick: tick, Kind: KindControlChange, Channel: int(ch), Data1: int(ctl), Data2: int(val)}
	case msg.GetMetaTempo(&bpm) && bpm > 0:
		// The file stores microseconds per quarter; gomidi hands back BPM.
		return RawEvent{Tick: tick, Kind: KindTempo, Channel: -1, Data1: int(math.Round(60_000_000 / bpm))}
	}
	return RawEvent{Tick: tick, Kind: KindOther, Channel: -1}
}
