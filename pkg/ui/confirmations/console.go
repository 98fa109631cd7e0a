// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator a yes/no question
type Prompter interface {
	Confirm(prompt string) (bool, error)
}

// ConsoleDialog asks on a console; anything but y/yes is a no
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a new console confirmation dialog reading from in
// and writing prompts to out
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm prints prompt followed by [y/N] and reads one line
func (d *ConsoleDialog) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(d.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	response, err := d.in.ReadString('\n')
	// closed input answers with whatever was typed, usually nothing
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

// FixedAnswer answers every prompt the same way, for --yes/--no and
// merge.assume_yes
type FixedAnswer bool

// Confirm returns the fixed answer
func (a FixedAnswer) Confirm(string) (bool, error) {
	return bool(a), nil
}
