package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
)

// Prompter implements secondary.Prompter on line-oriented input. An empty answer, "q" or
// end of input dismisses a prompt.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter creates a prompter. A non-interactive prompter dismisses every prompt
// without reading.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// PromptName asks for a name until validate accepts it.
func (p *Prompter) PromptName(ctx context.Context, prompt, defaultValue string, validate func(string) string) (string, error) {
	if !p.interactive {
		return "", errors.WithHint(
			errors.Wrap(primary.ErrPromptDismissed, "cannot prompt for a name without a terminal"),
			"pass the name with --name")
	}

	for {
		if defaultValue != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", prompt, defaultValue)
		} else {
			fmt.Fprintf(p.out, "%s: ", prompt)
		}

		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if answer == "" && defaultValue != "" {
			answer = defaultValue
		}
		if answer == "" || answer == "q" {
			return "", errors.Wrap(primary.ErrPromptDismissed, "name prompt dismissed")
		}

		if msg := validate(answer); msg != "" {
			fmt.Fprintln(p.out, color.New(color.FgYellow).Sprint(msg))
			continue
		}
		return answer, nil
	}
}

// PickOne asks for one of options by number.
func (p *Prompter) PickOne(ctx context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("nothing to pick from")
	}
	if !p.interactive {
		return 0, errors.WithHint(
			errors.Wrap(primary.ErrPromptDismissed, "cannot ask for a choice without a terminal"),
			"pass --module or --no-module")
	}

	fmt.Fprintln(p.out, title)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(p.out, "Choose 1-%d: ", len(options))
		answer, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		if answer == "" || answer == "q" {
			return 0, errors.Wrap(primary.ErrPromptDismissed, "choice dismissed")
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, color.New(color.FgYellow).Sprintf("Enter a number between 1 and %d", len(options)))
			continue
		}
		return n - 1, nil
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", errors.Wrap(primary.ErrPromptDismissed, "input closed")
		}
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

// Ensure Prompter implements the interface
var _ secondary.Prompter = (*Prompter)(nil)
