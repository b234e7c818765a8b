package main

import (
	"context"
	"time"
)

// ToneDriver drives the physical tone channels. SetFrequency with hz 0
// silences a channel.
type ToneDriver interface {
	CreateChannel(pin int) error
	SetFrequency(pin, hz int) error
	Close() error
}

// Player paces commands against the wall clock and hands them to a driver.
// Everything runs on the caller's goroutine.
type Player struct {
	driver ToneDriver
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewPlayer(driver ToneDriver) *Player {
	return &Player{driver: driver, sleep: sleepCtx}
}

// Play sends cmds in order, waiting each command's delay first. It returns
// ctx.Err() as soon as ctx is done; channels are left as they are.
func (p *Player) Play(ctx context.Context, cmds []Command) error {
	for i, c := range cmds {
		if err := p.sleep(ctx, seconds(c.Delay)); err != nil {
			logger.Debug("player: stopped", "at", i, "of", len(cmds))
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.driver.SetFrequency(c.Channel, c.Hz); err != nil {
			logger.Error("player: set frequency failed", "channel", c.Channel, "hz", c.Hz, "err", err)
		}
	}
	return nil
}

// Silence turns every channel off.
func (p *Player) Silence(channels []int) {
	for _, ch := range channels {
		if err := p.driver.SetFrequency(ch, 0); err != nil {
			logger.Error("player: silence failed", "channel", ch, "err", err)
		}
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
