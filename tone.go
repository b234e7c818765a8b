package main

import "fmt"

// logDriver only records commands in the log.
type logDriver struct{}

func (logDriver) CreateChannel(pin int) error {
	logger.Info("tone: channel created", "pin", pin)
	return nil
}

func (logDriver) SetFrequency(pin, hz int) error {
	logger.Info("tone: set", "pin", pin, "hz", hz)
	return nil
}

func (logDriver) Close() error { return nil }

// openDriver creates the named driver and registers every channel.
func openDriver(cfg *Config) (ToneDriver, error) {
	var (
		d   ToneDriver
		err error
	)
	switch cfg.Driver {
	case "serial":
		d, err = OpenSerial(cfg.SerialDevice, cfg.Baud)
	case "speaker":
		d, err = NewSpeakerDriver()
	case "log":
		d = logDriver{}
	default:
		err = fmt.Errorf("unknown driver %q (expected serial|speaker|log)", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	for _, pin := range cfg.Pins {
		if err := d.CreateChannel(pin); err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("create channel %d: %w", pin, err)
		}
	}
	return d, nil
}
