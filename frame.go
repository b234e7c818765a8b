package main

const (
	CmdCreateChannel = 0x20
	CmdSetTone       = 0x21
	SOF0             = 0xAA
	SOF1             = 0x55
	MaxFrameHz       = 0xFFFF
)

// ToneFrame is one command for the tone bridge microcontroller.
type ToneFrame struct {
	Cmd byte
	Pin byte
	Hz  uint16 // 0 = silent
	Seq byte
}

// NewToneFrame builds a set-tone frame, clamping hz into the wire range.
func NewToneFrame(pin, hz int, seq byte) ToneFrame {
	switch {
	case hz < 0:
		hz = 0
	case hz > MaxFrameHz:
		hz = MaxFrameHz
	}
	return ToneFrame{Cmd: CmdSetTone, Pin: byte(pin), Hz: uint16(hz), Seq: seq}
}

// Encode builds the on-wire representation:
//
//	[SOF0][SOF1][LEN][CMD][pin][hz hi][hz lo][seq][CKS]
//
// LEN counts CMD plus payload; CKS is the XOR of LEN, CMD and the payload.
func (f *ToneFrame) Encode() []byte {
	payload := []byte{f.Pin, byte(f.Hz >> 8), byte(f.Hz), f.Seq}

	length := byte(len(payload) + 1) // +1 for CMD byte
	cks := length ^ f.Cmd
	for _, b := range payload {
		cks ^= b
	}

	out := []byte{SOF0, SOF1, length, f.Cmd}
	out = append(out, payload...)
	out = append(out, cks)
	return out
}
