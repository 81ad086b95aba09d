// Package prompt abstracts interactive operator input.
//
// Business logic that needs an answer from the operator depends on the
// Prompter interface rather than on a terminal, so it can run against a
// scripted answer source in tests and in non-interactive environments.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the operator questions and returns their answers.
type Prompter interface {
	// Ask asks a free-form question. An empty answer yields def.
	Ask(question, def string) (string, error)

	// Confirm asks a yes/no question. An empty answer yields def.
	Confirm(question string, def bool) (bool, error)

	// Select asks the operator to pick zero or more of the given
	// options, returning the chosen subset in option order.
	Select(question string, options []string) ([]string, error)
}

// Terminal is a Prompter that reads answers line by line from an input
// stream, normally stdin.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminal creates a Terminal prompter over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask implements Prompter.
func (t *Terminal) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "? %s (%s) ", question, def)
	} else {
		fmt.Fprintf(t.out, "? %s ", question)
	}

	answer, err := t.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(t.out, "? %s %s ", question, hint)

	answer, err := t.reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))

	switch answer {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select implements Prompter. Options are shown as a numbered list and
// the operator answers with space- or comma-separated numbers. An empty
// answer selects nothing.
func (t *Terminal) Select(question string, options []string) ([]string, error) {
	fmt.Fprintf(t.out, "? %s\n", question)
	for i, opt := range options {
		fmt.Fprintf(t.out, "    %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(t.out, "  Selection (e.g. 1 3): ")

	answer, err := t.reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, nil
	}

	picked := make(map[int]bool)
	for _, field := range strings.FieldsFunc(answer, func(r rune) bool {
		return r == ' ' || r == ','
	}) {
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(options) {
			return nil, fmt.Errorf("invalid selection %q", field)
		}
		picked[n-1] = true
	}

	var selected []string
	for i, opt := range options {
		if picked[i] {
			selected = append(selected, opt)
		}
	}
	return selected, nil
}
