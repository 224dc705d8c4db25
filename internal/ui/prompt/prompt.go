// Package prompt implements the line-oriented operator prompts used before
// costly operations.
//
// Prompts read whole lines. Confirmation accepts nothing but a lone "y" or
// "Y"; any other answer declines, so piped input has to opt in explicitly.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Say writes a line to the prompter's output.
func (p *Prompter) Say(s string) {
	fmt.Fprintln(p.out, s)
}

// Ask writes the question and returns the next input line, trimmed.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Only "y" or "Y" answers yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " [y/N]")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
