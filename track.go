package main

import (
	"runtime"

	"github.com/remeh/sizedwaitgroup"
)

// Track is a file turned into playable commands.
type Track struct {
	Path     string
	Commands []Command
	Stats    Stats
	Err      error
}

// buildTrack runs the transform stages on a decoded stream.
func buildTrack(st Stream, cfg *Config) ([]Command, Stats, error) {
	var stats Stats

	events := Normalize(st.Events)
	events, stats.Sustained = SustainPedal(events, cfg.Pedal)

	tl, err := ScaleTime(Stream{Resolution: st.Resolution, Events: events}, cfg.Speed)
	if err != nil {
		return nil, stats, err
	}
	stats.Length = tl.Length
	stats.Notes = tl.NoteCount

	alloc, err := NewAllocator(cfg.Pins, cfg.Shift)
	if err != nil {
		return nil, stats, err
	}
	cmds := alloc.Allocate(tl.Notes)
	stats.Stolen = alloc.Stolen()
	return cmds, stats, nil
}

func prepareTrack(path string, cfg *Config) Track {
	t := Track{Path: path}
	st, err := ReadMIDIFile(path)
	if err != nil {
		t.Err = err
		return t
	}
	t.Commands, t.Stats, t.Err = buildTrack(st, cfg)
	if t.Err == nil {
		logger.Debug("track: prepared", "path", path, "commands", len(t.Commands), "length", t.Stats.HumanLength())
	}
	return t
}

// prepareTracks decodes and transforms every file concurrently. Results keep
// the order of paths.
func prepareTracks(paths []string, cfg *Config) []Track {
	tracks := make([]Track, len(paths))
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for i, p := range paths {
		wg.Add()
		go func(i int, p string) {
			defer wg.Done()
			tracks[i] = prepareTrack(p, cfg)
		}(i, p)
	}
	wg.Wait()
	return tracks
}
