package main

import (
	"bytes"
	"errors"
	"testing"
)

func TestToneFrameEncode(t *testing.T) {
	f := NewToneFrame(21, 446, 7)
	got := f.Encode()
	// LEN=5, CMD=0x21, pin=21, hz=0x01BE, seq=7
	cks := byte(5 ^ 0x21 ^ 21 ^ 0x01 ^ 0xBE ^ 7)
	want := []byte{SOF0, SOF1, 5, CmdSetTone, 21, 0x01, 0xBE, 7, cks}
	if !bytes.Equal(got, want) {
		t.Fatalf("frame = % x, want % x", got, want)
	}
}

func TestToneFrameClampsHz(t *testing.T) {
	if f := NewToneFrame(1, 100000, 0); f.Hz != MaxFrameHz {
		t.Fatalf("hz = %d, want %d", f.Hz, MaxFrameHz)
	}
	if f := NewToneFrame(1, -3, 0); f.Hz != 0 {
		t.Fatalf("hz = %d, want 0", f.Hz)
	}
}

type fakePort struct {
	bytes.Buffer
	closed bool
	err    error
}

func (p *fakePort) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.Buffer.Write(b)
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestSerialDriverSequencesFrames(t *testing.T) {
	port := &fakePort{}
	d := &SerialDriver{port: port}
	if err := d.CreateChannel(21); err != nil {
		t.Fatal(err)
	}
	if err := d.SetFrequency(21, 440); err != nil {
		t.Fatal(err)
	}
	create := ToneFrame{Cmd: CmdCreateChannel, Pin: 21, Seq: 0}
	set := NewToneFrame(21, 440, 1)
	want := append(create.Encode(), set.Encode()...)
	if !bytes.Equal(port.Bytes(), want) {
		t.Fatalf("wrote % x, want % x", port.Bytes(), want)
	}
	if err := d.Close(); err != nil || !port.closed {
		t.Fatalf("close: err=%v closed=%v", err, port.closed)
	}
}

func TestSerialDriverWriteError(t *testing.T) {
	boom := errors.New("unplugged")
	d := &SerialDriver{port: &fakePort{err: boom}}
	if err := d.SetFrequency(1, 0); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
