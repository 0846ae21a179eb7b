// Package prompt reads validated operator input from a line-oriented terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("prompt: input closed")

const (
	msgInvalidString  = "Entrada inválida. Por favor, inténtelo nuevamente."
	msgInvalidInt     = "Entrada inválida. Por favor, ingrese un número entero positivo."
	msgInvalidDecimal = "Entrada inválida. Por favor, ingrese un número positivo."
)

// Reader prompts on out and reads answers from in, one line at a time.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader wraps the given streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Out exposes the writer prompts are printed to.
func (r *Reader) Out() io.Writer {
	return r.out
}

// String re-prompts until a non-blank line is entered and returns it trimmed.
func (r *Reader) String(prompt string) (string, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return "", err
		}
		if value := strings.TrimSpace(line); value != "" {
			return value, nil
		}
		fmt.Fprintln(r.out, msgInvalidString)
	}
}

// NonNegativeInt re-prompts until the first token of the line is an integer >= 0.
// The rest of the line is always discarded.
func (r *Reader) NonNegativeInt(prompt string) (int, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.Atoi(firstField(line))
		if parseErr == nil && value >= 0 {
			return value, nil
		}
		fmt.Fprintln(r.out, msgInvalidInt)
	}
}

// NonNegativeDecimal re-prompts until the first token of the line is a finite
// decimal >= 0. The rest of the line is always discarded.
func (r *Reader) NonNegativeDecimal(prompt string) (float64, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.ParseFloat(firstField(line), 64)
		if parseErr == nil && value >= 0 && !math.IsInf(value, 0) && !math.IsNaN(value) {
			return value, nil
		}
		fmt.Fprintln(r.out, msgInvalidDecimal)
	}
}

// Token prints prompt and returns the first whitespace separated token of the
// next line, which may be empty.
func (r *Reader) Token(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.readLine()
	if err != nil {
		return "", err
	}
	return firstField(line), nil
}

func (r *Reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		// A final line without newline still counts as input.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return line, nil
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
