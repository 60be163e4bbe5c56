// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions on an IO pair.
type Prompter struct {
	reader io.Reader
	writer io.Writer
}

// New creates a Prompter using stdin and stdout.
func New() *Prompter {
	return &Prompter{reader: os.Stdin, writer: os.Stdout}
}

// NewWithIO creates a Prompter with a custom reader and writer for testing.
func NewWithIO(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: r, writer: w}
}

// Confirm asks a yes/no question and blocks for an answer.
// Only "y" or "yes" (case-insensitive) count as yes; anything else,
// including EOF, is no.
func (p *Prompter) Confirm(format string, args ...any) bool {
	fmt.Fprintf(p.writer, format, args...)
	fmt.Fprint(p.writer, " [y/N]: ")

	reader := bufio.NewReader(p.reader)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
