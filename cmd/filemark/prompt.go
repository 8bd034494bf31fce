package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/filemark/pkg/core"
)

// stdinPrompter implements core.Prompter on the terminal.
type stdinPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newStdinPrompter() *stdinPrompter {
	return &stdinPrompter{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Confirm asks a yes/no question with a default answer on empty input.
func (p *stdinPrompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s ", question, hint)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	if line == "" {
		return def, nil
	}
	return strings.EqualFold(line, "y") || strings.EqualFold(line, "yes"), nil
}

// Input solicits one line of free text.
func (p *stdinPrompter) Input(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// readLine maps end-of-input (ctrl-d) to core.ErrCancelled.
func (p *stdinPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", core.ErrCancelled
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
