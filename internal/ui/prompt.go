package ui

import (
	"fmt"
	"strings"
)

// Prompt asks for a line of text, returning the default when the user just
// presses enter.
func (c *Console) Prompt(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question.
func (c *Console) Confirm(label string, defaultYes bool) (bool, error) {
	suffix := "[Y/n]"
	if !defaultYes {
		suffix = "[y/N]"
	}
	for {
		fmt.Fprintf(c.out, "%s %s: ", label, suffix)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(c.out, "Answer y or n.")
		}
	}
}

// PressAnyKey waits for a keypress on a terminal; elsewhere it returns
// immediately so scripted runs never block.
func (c *Console) PressAnyKey() {
	if !c.Interactive() {
		return
	}
	fmt.Fprint(c.out, "Press any key to continue...")
	_, _ = c.keys.ReadKey()
	fmt.Fprintln(c.out)
}
