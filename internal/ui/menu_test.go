package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// scriptedKeys replays a fixed key sequence.
type scriptedKeys struct {
	events []KeyEvent
	pos    int
}

func (s *scriptedKeys) ReadKey() (KeyEvent, error) {
	if s.pos >= len(s.events) {
		return KeyEvent{}, errors.New("script exhausted")
	}
	event := s.events[s.pos]
	s.pos++
	return event, nil
}

func keys(events ...KeyEvent) *scriptedKeys {
	return &scriptedKeys{events: events}
}

func TestSelectInteractiveNavigates(t *testing.T) {
	var out bytes.Buffer
	console := NewTestConsole(&out, strings.NewReader(""), keys(
		KeyEvent{Key: KeyDown},
		KeyEvent{Key: KeyDown},
		KeyEvent{Key: KeyUp},
		KeyEvent{Key: KeyEnter},
	))

	index, err := console.Select("Choose:", []string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if index != 1 {
		t.Fatalf("expected index 1, got %d", index)
	}
	if !strings.Contains(out.String(), "Choose:") {
		t.Fatal("expected prompt to be rendered")
	}
}

func TestSelectInteractiveClampsAtEdges(t *testing.T) {
	console := NewTestConsole(&bytes.Buffer{}, strings.NewReader(""), keys(
		KeyEvent{Key: KeyUp},
		KeyEvent{Key: KeyUp},
		KeyEvent{Key: KeyEnter},
	))
	index, err := console.Select("Choose:", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if index != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", index)
	}
}

func TestSelectInteractiveCancelAndBack(t *testing.T) {
	console := NewTestConsole(&bytes.Buffer{}, strings.NewReader(""), keys(KeyEvent{Key: KeyEscape}))
	if _, err := console.Select("Choose:", []string{"a"}); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}

	console = NewTestConsole(&bytes.Buffer{}, strings.NewReader(""), keys(KeyEvent{Key: KeyLeft}))
	if _, err := console.Select("Choose:", []string{"a"}); !errors.Is(err, ErrBack) {
		t.Fatalf("expected ErrBack, got %v", err)
	}
}

func TestSelectNumberedFallback(t *testing.T) {
	var out bytes.Buffer
	console := NewTestConsole(&out, strings.NewReader("9\n2\n"), nil)

	index, err := console.Select("Choose:", []string{"one", "two"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if index != 1 {
		t.Fatalf("expected index 1, got %d", index)
	}
	if !strings.Contains(out.String(), "between 1 and 2") {
		t.Fatal("expected reprompt after invalid input")
	}
}

func TestSelectRejectsEmptyChoices(t *testing.T) {
	console := NewTestConsole(&bytes.Buffer{}, strings.NewReader(""), nil)
	if _, err := console.Select("Choose:", nil); err == nil {
		t.Fatal("expected error for empty choice list")
	}
}

func TestPromptUsesDefault(t *testing.T) {
	console := NewTestConsole(&bytes.Buffer{}, strings.NewReader("\ncustom.mkv\n"), nil)

	value, err := console.Prompt("Output name", "default.mkv")
	if err != nil {
		t.Fatalf("Prompt returned error: %v", err)
	}
	if value != "default.mkv" {
		t.Fatalf("expected default, got %q", value)
	}

	value, err = console.Prompt("Output name", "default.mkv")
	if err != nil {
		t.Fatalf("Prompt returned error: %v", err)
	}
	if value != "custom.mkv" {
		t.Fatalf("expected custom value, got %q", value)
	}
}

func TestPromptCancelledOnEOF(t *testing.T) {
	console := NewTestConsole(&bytes.Buffer{}, strings.NewReader(""), nil)
	if _, err := console.Prompt("Output name", ""); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled on EOF, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	console := NewTestConsole(&out, strings.NewReader("\nmaybe\nn\n"), nil)

	yes, err := console.Confirm("Run it?", true)
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if !yes {
		t.Fatal("expected default yes")
	}

	yes, err = console.Confirm("Run it?", true)
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if yes {
		t.Fatal("expected no after reprompt")
	}
	if !strings.Contains(out.String(), "Answer y or n.") {
		t.Fatal("expected reprompt message")
	}
}
