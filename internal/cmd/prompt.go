package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks interactive questions on the command's streams. It
// exists so the interactive flow is testable with plain buffers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints a question and returns the trimmed reply line.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Only "yes" and "y" (case-insensitive)
// count as confirmation.
func (p *Prompter) Confirm(question string) (bool, error) {
	reply, err := p.Ask(question + " (yes/no):")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(reply) {
	case "yes", "y":
		return true, nil
	}
	return false, nil
}
