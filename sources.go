package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

func isMIDIName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".mid")
}

// resolveInputs expands files and directories into MIDI file paths.
// Missing inputs are reported and skipped.
func resolveInputs(inputs []string) []string {
	var files []string
	for _, in := range inputs {
		fi, statErr := os.Stat(in)
		switch {
		case isMIDIName(in):
			if statErr == nil && fi.Mode().IsRegular() {
				files = append(files, in)
			} else {
				logger.Warn("didn't find midi file", "path", in)
			}
		case statErr == nil && fi.IsDir():
			entries, err := os.ReadDir(in)
			if err != nil {
				logger.Warn("can't read dir", "path", in, "err", err)
				continue
			}
			for _, e := range entries {
				if !e.IsDir() && isMIDIName(e.Name()) {
					files = append(files, filepath.Join(in, e.Name()))
				}
			}
		default:
			logger.Warn("didn't find midi file nor dir", "path", in)
		}
	}
	return files
}

// pickTracks shuffles files and keeps at most count of them.
func pickTracks(files []string, count int, rng *rand.Rand) []string {
	out := make([]string, len(files))
	copy(out, files)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count < len(out) {
		out = out[:count]
	}
	return out
}
