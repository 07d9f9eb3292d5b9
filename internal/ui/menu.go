package ui

import (
	"fmt"
	"strconv"
)

// Select presents an ordered list of choices and returns the chosen index.
// On a terminal the menu is driven with the arrow keys (enter confirms,
// left arrow reports ErrBack, escape and Ctrl-C report ErrCancelled); when
// no terminal is attached it falls back to a numbered prompt.
func (c *Console) Select(prompt string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("select %q: no choices", prompt)
	}
	if c.Interactive() {
		return c.selectInteractive(prompt, choices)
	}
	return c.selectNumbered(prompt, choices)
}

func (c *Console) selectInteractive(prompt string, choices []string) (int, error) {
	current := 0
	rendered := false
	for {
		if rendered {
			// Redraw in place.
			fmt.Fprintf(c.out, "\x1b[%dA", len(choices)+1)
		}
		rendered = true

		fmt.Fprintln(c.out, c.paint(ansiBold, prompt))
		for i, choice := range choices {
			if i == current {
				fmt.Fprintf(c.out, "\x1b[2K> %s\n", c.paint(ansiCyan, choice))
			} else {
				fmt.Fprintf(c.out, "\x1b[2K  %s\n", choice)
			}
		}

		event, err := c.keys.ReadKey()
		if err != nil {
			return 0, err
		}
		switch event.Key {
		case KeyUp:
			if current > 0 {
				current--
			}
		case KeyDown:
			if current < len(choices)-1 {
				current++
			}
		case KeyEnter:
			return current, nil
		case KeyLeft:
			return 0, ErrBack
		case KeyEscape, KeyCtrlC:
			return 0, ErrCancelled
		}
	}
}

func (c *Console) selectNumbered(prompt string, choices []string) (int, error) {
	fmt.Fprintln(c.out, prompt)
	for i, choice := range choices {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, choice)
	}
	for {
		fmt.Fprint(c.out, "Enter choice number: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		index, convErr := strconv.Atoi(line)
		if convErr != nil || index < 1 || index > len(choices) {
			fmt.Fprintf(c.out, "Choose a number between 1 and %d.\n", len(choices))
			continue
		}
		return index - 1, nil
	}
}
