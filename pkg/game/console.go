package game

import (
	"bufio"
	"fmt"
	"io"
)

// Console is the production Responder: a line-oriented prompt over a pair
// of streams, normally stdin and stdout.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewConsole wraps the given streams. The prompt is printed before every
// read.
func NewConsole(in io.Reader, out io.Writer, prompt string) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, prompt: prompt}
}

// Send writes one response followed by a blank line, keeping turns
// visually separated.
func (c *Console) Send(msg string) {
	fmt.Fprintln(c.out, msg)
	fmt.Fprintln(c.out)
}

// ReadLine prompts and reads one line. Returns io.EOF when the input
// stream is exhausted.
func (c *Console) ReadLine() (string, error) {
	fmt.Fprint(c.out, c.prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
