package stencil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TerminalPrompter asks questions on a terminal, one line per answer.
//
// Boolean inputs accept y/yes/true and n/no/false (case-insensitive).
// Enum inputs show a numbered option list and accept either the number
// or the option text. List inputs accept comma-separated numbers or
// option texts. An empty line selects the declared default when one
// exists.
type TerminalPrompter struct {
	in  *bufio.Scanner
	out io.Writer

	promptStyle  lipgloss.Style
	optionStyle  lipgloss.Style
	defaultStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// TerminalOption configures a TerminalPrompter.
type TerminalOption func(*TerminalPrompter)

// WithInput sets the reader answers are read from. Default: os.Stdin.
func WithInput(r io.Reader) TerminalOption {
	return func(p *TerminalPrompter) {
		p.in = bufio.NewScanner(r)
	}
}

// WithOutput sets the writer prompts are written to. Default: os.Stdout.
func WithOutput(w io.Writer) TerminalOption {
	return func(p *TerminalPrompter) {
		p.out = w
	}
}

// NewTerminalPrompter creates a prompter on stdin/stdout.
func NewTerminalPrompter(opts ...TerminalOption) *TerminalPrompter {
	p := &TerminalPrompter{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,

		promptStyle:  lipgloss.NewStyle().Bold(true),
		optionStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		defaultStyle: lipgloss.NewStyle().Faint(true),
		errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(path string, spec InputSpec) (bool, error) {
	hint := "y/n"
	if spec.Default != nil {
		if spec.Default.AsBool() {
			hint = "Y/n"
		} else {
			hint = "y/N"
		}
	}

	for {
		p.ask(path, spec, hint)
		line, err := p.readLine(path)
		if err != nil {
			return false, err
		}

		if line == "" && spec.Default != nil {
			return spec.Default.AsBool(), nil
		}
		switch strings.ToLower(line) {
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		}
		p.complain("please answer yes or no")
	}
}

// Input implements Prompter.
func (p *TerminalPrompter) Input(path string, spec InputSpec) (string, error) {
	hint := ""
	if spec.Default != nil {
		hint = spec.Default.AsString()
	}

	p.ask(path, spec, hint)
	line, err := p.readLine(path)
	if err != nil {
		return "", err
	}
	if line == "" && spec.Default != nil {
		return spec.Default.AsString(), nil
	}
	return line, nil
}

// Select implements Prompter.
func (p *TerminalPrompter) Select(path string, spec InputSpec) (string, error) {
	hint := ""
	if spec.Default != nil {
		hint = spec.Default.AsString()
	}

	for {
		p.ask(path, spec, hint)
		p.listOptions(spec.Options)
		line, err := p.readLine(path)
		if err != nil {
			return "", err
		}

		if line == "" && spec.Default != nil {
			return spec.Default.AsString(), nil
		}
		if choice, ok := pickOption(spec.Options, line); ok {
			return choice, nil
		}
		p.complain("please pick one of the listed options")
	}
}

// MultiSelect implements Prompter.
func (p *TerminalPrompter) MultiSelect(path string, spec InputSpec) ([]string, error) {
	for {
		p.ask(path, spec, "comma-separated")
		p.listOptions(spec.Options)
		line, err := p.readLine(path)
		if err != nil {
			return nil, err
		}

		if line == "" {
			if spec.Default != nil {
				return spec.Default.AsList(), nil
			}
			return nil, nil
		}

		parts := strings.Split(line, ",")
		choices := make([]string, 0, len(parts))
		valid := true
		for _, part := range parts {
			choice, ok := pickOption(spec.Options, strings.TrimSpace(part))
			if !ok {
				valid = false
				break
			}
			choices = append(choices, choice)
		}
		if valid {
			return choices, nil
		}
		p.complain("please pick from the listed options")
	}
}

// ask prints the question line for an input.
func (p *TerminalPrompter) ask(path string, spec InputSpec, hint string) {
	question := spec.Prompt
	if question == "" {
		question = path
	}
	fmt.Fprint(p.out, p.promptStyle.Render(question))
	if hint != "" {
		fmt.Fprintf(p.out, " %s", p.defaultStyle.Render("["+hint+"]"))
	}
	fmt.Fprint(p.out, " ")
}

// listOptions prints a numbered option list.
func (p *TerminalPrompter) listOptions(options []string) {
	fmt.Fprintln(p.out)
	for i, o := range options {
		fmt.Fprintf(p.out, "  %s %s\n", p.optionStyle.Render(strconv.Itoa(i+1)+")"), o)
	}
	fmt.Fprint(p.out, "> ")
}

// complain prints a validation message before re-asking.
func (p *TerminalPrompter) complain(msg string) {
	fmt.Fprintln(p.out, p.errorStyle.Render(msg))
}

// readLine reads one trimmed answer line.
func (p *TerminalPrompter) readLine(path string) (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", &InputError{Path: path, Err: err}
		}
		return "", &InputError{Path: path, Err: io.EOF}
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// pickOption resolves a raw answer to an option, by number or by text.
func pickOption(options []string, raw string) (string, bool) {
	if idx, err := strconv.Atoi(raw); err == nil {
		if idx >= 1 && idx <= len(options) {
			return options[idx-1], true
		}
		return "", false
	}
	for _, o := range options {
		if o == raw {
			return o, true
		}
	}
	return "", false
}
