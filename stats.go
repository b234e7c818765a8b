package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hako/durafmt"
)

var (
	shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

	statsLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statsWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Stats summarises a prepared track.
type Stats struct {
	Notes     int
	Length    float64 // seconds
	Sustained int
	Stolen    int
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return 100 * float64(n) / float64(of)
}

func (s Stats) Duration() time.Duration { return seconds(s.Length) }

// HumanLength formats the track length like "3m 12s".
func (s Stats) HumanLength() string {
	return durafmt.Parse(s.Duration()).LimitFirstN(2).Format(shortUnits)
}

func (s Stats) String() string {
	return fmt.Sprintf("playing %d notes for %.2f minutes, with %d (%.1f%%) bad offs and %d (%.1f%%) sustained notes",
		s.Notes, s.Length/60,
		s.Stolen, percent(s.Stolen, s.Notes),
		s.Sustained, percent(s.Sustained, s.Notes))
}

// Render is String styled for a terminal.
func (s Stats) Render() string {
	line := statsLabel.Render("playing") + fmt.Sprintf(" %d notes for %.2f minutes, with ", s.Notes, s.Length/60)
	bad := fmt.Sprintf("%d (%.1f%%) bad offs", s.Stolen, percent(s.Stolen, s.Notes))
	if s.Stolen > 0 {
		bad = statsWarn.Render(bad)
	}
	return line + bad + fmt.Sprintf(" and %d (%.1f%%) sustained notes", s.Sustained, percent(s.Sustained, s.Notes))
}
