package main

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// SerialDriver sends tone frames to a microcontroller that generates the
// square waves on its pins.
type SerialDriver struct {
	port io.WriteCloser
	seq  byte
}

// OpenSerial opens the named serial device at the given baud rate.
func OpenSerial(name string, baud int) (*SerialDriver, error) {
	mode := &serial.Mode{BaudRate: baud}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", name, err)
	}
	logger.Info("serial: port opened", "device", name, "baud", baud)
	return &SerialDriver{port: p}, nil
}

func (s *SerialDriver) CreateChannel(pin int) error {
	f := ToneFrame{Cmd: CmdCreateChannel, Pin: byte(pin)}
	return s.send(f)
}

func (s *SerialDriver) SetFrequency(pin, hz int) error {
	return s.send(NewToneFrame(pin, hz, 0))
}

func (s *SerialDriver) send(f ToneFrame) error {
	f.Seq = s.seq
	s.seq++
	data := f.Encode()
	n, err := s.port.Write(data)
	if err != nil {
		return fmt.Errorf("serial: write: %w", err)
	}
	logger.Debug("serial: frame sent", "bytes", n, "seq", f.Seq, "cmd", f.Cmd, "pin", f.Pin, "hz", f.Hz)
	return nil
}

// Close closes the underlying serial port.
func (s *SerialDriver) Close() error {
	logger.Info("serial: closing port")
	return s.port.Close()
}
