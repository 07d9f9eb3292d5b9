// Package ui provides the terminal capabilities the interactive flows are
// built from: raw-mode key reading, highlighted selection menus, line
// prompts, and progress bars. Everything is injected through the Console so
// the command compiler and the feature flows never touch terminal state
// directly and tests can script the interaction.
package ui
