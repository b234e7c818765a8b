package main

// SustainPedal turns damper-pedal control changes into deferred note-offs.
//
// While a channel's pedal is down its note-offs are held back and released,
// in arrival order, at the tick of the pedal-up event. Note-offs still held
// when the stream ends are released at the tick of the last event. The
// second return value counts held note-offs. With enabled false the input is
// returned unchanged.
func SustainPedal(events []RawEvent, enabled bool) ([]RawEvent, int) {
	if !enabled {
		return events, 0
	}

	down := map[int]bool{}
	var held []RawEvent
	out := make([]RawEvent, 0, len(events))
	sustained := 0

	for _, e := range events {
		if e.IsSustain() {
			if e.Data2 > 63 {
				down[e.Channel] = true
			} else {
				delete(down, e.Channel)
				kept := held[:0]
				for _, h := range held {
					if h.Channel == e.Channel {
						h.Tick = e.Tick
						out = append(out, h)
					} else {
						kept = append(kept, h)
					}
				}
				held = kept
			}
		}
		if e.IsNoteOff() && down[e.Channel] {
			held = append(held, e)
			sustained++
			continue
		}
		out = append(out, e)
	}

	if len(held) > 0 {
		last := events[len(events)-1].Tick
		logger.Debug("pedal: releasing note-offs held at end of stream", "count", len(held), "tick", last)
		for _, h := range held {
			h.Tick = last
			out = append(out, h)
		}
	}
	return out, sustained
}
