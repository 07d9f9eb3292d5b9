package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Key identifies a decoded keypress.
type Key int

const (
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyCtrlC
)

// KeyEvent is one keypress. Rune is only meaningful for KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeyReader yields decoded keypresses. Implementations may block.
type KeyReader interface {
	ReadKey() (KeyEvent, error)
}

// rawKeyReader reads single keypresses from a terminal, switching it into
// raw mode for the duration of each read so the surrounding output keeps
// normal line discipline.
type rawKeyReader struct {
	in *os.File
}

// NewRawKeyReader returns a KeyReader over the given terminal file,
// typically os.Stdin.
func NewRawKeyReader(in *os.File) KeyReader {
	return &rawKeyReader{in: in}
}

func (r *rawKeyReader) ReadKey() (KeyEvent, error) {
	fd := int(r.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return KeyEvent{}, fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return decodeKey(r.in)
}

// decodeKey reads and decodes one keypress from the stream.
func decodeKey(in io.Reader) (KeyEvent, error) {
	b, err := readByte(in)
	if err != nil {
		return KeyEvent{}, fmt.Errorf("read key: %w", err)
	}

	switch b {
	case 0x03:
		return KeyEvent{Key: KeyCtrlC}, nil
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, nil
	case 0x1b:
		return decodeEscapeSequence(in)
	default:
		return KeyEvent{Key: KeyRune, Rune: rune(b)}, nil
	}
}

// decodeEscapeSequence decodes CSI arrow sequences. The bytes are read one
// at a time because a terminal may deliver the sequence across several
// reads. A bare ESC (or anything unrecognized after it) is reported as
// KeyEscape.
func decodeEscapeSequence(in io.Reader) (KeyEvent, error) {
	b, err := readByte(in)
	if err != nil || b != '[' {
		return KeyEvent{Key: KeyEscape}, nil
	}
	b, err = readByte(in)
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}
	switch b {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	default:
		return KeyEvent{Key: KeyEscape}, nil
	}
}

func readByte(in io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(in, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
