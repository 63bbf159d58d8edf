// Package prompt asks the console for the values the tools cannot get from
// a click.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/HamletTheHamster/Spectroscopy-Tools-in-Go/internal/textio"
)

// ErrNoInput is returned when input ends before a valid answer.
var ErrNoInput = errors.New("no input")

// Prompter reads answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Stdio prompts on the terminal.
func Stdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// Float asks until the answer parses as a float.
func (p *Prompter) Float(question string) (float64, error) {
	for {
		answer, err := p.Line(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "invalid input")
	}
}

// Line asks once and returns the answer without surrounding quotes or
// whitespace.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Fprint(p.out, question)

	answer, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if answer == "" {
			return "", ErrNoInput
		}
	}
	return textio.StripMargin(answer), nil
}
