package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const speakerSampleRate = 48000

// squareBank mixes one square wave per channel, like a row of piezos.
// Output is interleaved stereo float32.
type squareBank struct {
	mu    sync.Mutex
	rate  float64
	gain  float32
	order []int
	tones map[int]*square
	buf   []float32
}

type square struct {
	hz    float64
	phase float64 // 0..1
}

func newSquareBank(sampleRate int) *squareBank {
	return &squareBank{rate: float64(sampleRate), tones: map[int]*square{}}
}

func (b *squareBank) add(pin int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.tones[pin]; ok {
		return
	}
	b.tones[pin] = &square{}
	b.order = append(b.order, pin)
	b.gain = 0.8 / float32(len(b.order))
}

func (b *squareBank) set(pin, hz int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.tones[pin]
	if !ok {
		return fmt.Errorf("speaker: channel %d not created", pin)
	}
	t.hz = float64(hz)
	return nil
}

func (b *squareBank) Process(dst []float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i+1 < len(dst); i += 2 {
		var s float32
		for _, pin := range b.order {
			t := b.tones[pin]
			if t.hz <= 0 {
				continue
			}
			if t.phase < 0.5 {
				s += b.gain
			} else {
				s -= b.gain
			}
			t.phase += t.hz / b.rate
			t.phase -= math.Floor(t.phase)
		}
		dst[i], dst[i+1] = s, s
	}
}

// Read renders float32 little-endian stereo frames; it never ends.
func (b *squareBank) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(b.buf) < need {
		b.buf = make([]float32, need)
	}
	b.buf = b.buf[:need]
	b.Process(b.buf)
	for i, v := range b.buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return frames * 8, nil
}

// SpeakerDriver plays the channels on the sound card instead of pins.
type SpeakerDriver struct {
	bank   *squareBank
	player *audio.Player
}

func NewSpeakerDriver() (*SpeakerDriver, error) {
	bank := newSquareBank(speakerSampleRate)
	ctx := audio.NewContext(speakerSampleRate)
	pl, err := ctx.NewPlayerF32(bank)
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	pl.Play()
	logger.Info("speaker: audio output started", "sample_rate", speakerSampleRate)
	return &SpeakerDriver{bank: bank, player: pl}, nil
}

func (s *SpeakerDriver) CreateChannel(pin int) error {
	s.bank.add(pin)
	return nil
}

func (s *SpeakerDriver) SetFrequency(pin, hz int) error {
	return s.bank.set(pin, hz)
}

func (s *SpeakerDriver) Close() error {
	s.player.Pause()
	return s.player.Close()
}
