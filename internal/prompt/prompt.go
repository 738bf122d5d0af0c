// Package prompt handles the interactive standup questions.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader asks questions on out and reads single-line answers from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Reader, typically over stdin/stdout.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Ask prints the question and reads one trimmed line. EOF with no input
// returns an empty answer rather than an error so piped runs still work.
func (r *Reader) Ask(question string) (string, error) {
	fmt.Fprintf(r.out, "  %s\n  > ", question)

	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
