// Package prompt asks yes/no questions on the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var yesAnswers = map[string]bool{
	"y":   true,
	"yes": true,
	"j":   true,
	"ja":  true,
}

// IsYes reports whether an answer means yes, in English or German.
func IsYes(answer string) bool {
	return yesAnswers[strings.ToLower(strings.TrimSpace(answer))]
}

// Prompter reads answers line by line from one reader.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// YesNo prints the question and reads one line. Anything other than a yes
// answer, including end of input, counts as no.
func (p *Prompter) YesNo(question string) (bool, error) {
	if _, err := fmt.Fprint(p.out, question+" "); err != nil {
		return false, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return IsYes(line), nil
}
