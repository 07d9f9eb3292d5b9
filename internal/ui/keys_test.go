package ui

import (
	"bytes"
	"io"
	"testing"
)

// dripReader returns at most one byte per Read call, the way a terminal can
// deliver an escape sequence split across reads.
type dripReader struct {
	data []byte
}

func (d *dripReader) Read(p []byte) (int, error) {
	if len(d.data) == 0 {
		return 0, io.EOF
	}
	p[0] = d.data[0]
	d.data = d.data[1:]
	return 1, nil
}

func TestDecodeKeyBasic(t *testing.T) {
	cases := []struct {
		input []byte
		want  KeyEvent
	}{
		{[]byte{'x'}, KeyEvent{Key: KeyRune, Rune: 'x'}},
		{[]byte{'\r'}, KeyEvent{Key: KeyEnter}},
		{[]byte{'\n'}, KeyEvent{Key: KeyEnter}},
		{[]byte{0x03}, KeyEvent{Key: KeyCtrlC}},
		{[]byte{0x1b, '[', 'A'}, KeyEvent{Key: KeyUp}},
		{[]byte{0x1b, '[', 'B'}, KeyEvent{Key: KeyDown}},
		{[]byte{0x1b, '[', 'C'}, KeyEvent{Key: KeyRight}},
		{[]byte{0x1b, '[', 'D'}, KeyEvent{Key: KeyLeft}},
		{[]byte{0x1b, '[', 'Z'}, KeyEvent{Key: KeyEscape}},
		{[]byte{0x1b, 'x'}, KeyEvent{Key: KeyEscape}},
	}
	for _, tc := range cases {
		got, err := decodeKey(bytes.NewReader(tc.input))
		if err != nil {
			t.Fatalf("decodeKey(%v) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("decodeKey(%v) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestDecodeKeySplitEscapeSequence(t *testing.T) {
	// Each byte of the arrow sequence arrives in its own read.
	got, err := decodeKey(&dripReader{data: []byte{0x1b, '[', 'A'}})
	if err != nil {
		t.Fatalf("decodeKey returned error: %v", err)
	}
	if got.Key != KeyUp {
		t.Fatalf("split arrow sequence decoded as %+v, want KeyUp", got)
	}
}

func TestDecodeKeyBareEscapeAtEOF(t *testing.T) {
	got, err := decodeKey(&dripReader{data: []byte{0x1b}})
	if err != nil {
		t.Fatalf("decodeKey returned error: %v", err)
	}
	if got.Key != KeyEscape {
		t.Fatalf("bare escape decoded as %+v, want KeyEscape", got)
	}
}
