package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	songs := filepath.Join(dir, "songs")
	if err := os.Mkdir(songs, 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(songs, "a.mid"))
	touch(t, filepath.Join(songs, "B.MID"))
	touch(t, filepath.Join(songs, "notes.txt"))
	single := filepath.Join(dir, "single.mid")
	touch(t, single)

	got := resolveInputs([]string{
		single,
		songs,
		filepath.Join(dir, "missing.mid"),
		filepath.Join(dir, "nothing-here"),
	})
	slices.Sort(got)
	want := []string{filepath.Join(songs, "B.MID"), filepath.Join(songs, "a.mid"), single}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("resolved = %v, want %v", got, want)
	}
}

func TestPickTracks(t *testing.T) {
	files := []string{"a.mid", "b.mid", "c.mid", "d.mid"}
	rng := rand.New(rand.NewPCG(1, 2))

	got := pickTracks(files, 2, rng)
	if len(got) != 2 {
		t.Fatalf("picked %d, want 2", len(got))
	}
	for _, f := range got {
		if !slices.Contains(files, f) {
			t.Fatalf("picked unknown file %q", f)
		}
	}
	if got[0] == got[1] {
		t.Fatalf("picked %q twice", got[0])
	}

	all := pickTracks(files, 10, rng)
	slices.Sort(all)
	if !slices.Equal(all, files) {
		t.Fatalf("picked %v, want every file once", all)
	}
	if files[0] != "a.mid" {
		t.Fatalf("input slice was reordered")
	}
}
