package cli

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/example/ngfc/internal/ports/secondary"
)

// ProgressReporter implements secondary.ProgressReporter with pterm. On a terminal it shows
// a spinner; otherwise it prints one line per finished step.
type ProgressReporter struct {
	out     io.Writer
	animate bool
}

// NewProgressReporter creates a reporter writing to out.
func NewProgressReporter(out io.Writer, animate bool) *ProgressReporter {
	return &ProgressReporter{out: out, animate: animate}
}

// Start begins a progress indicator.
func (r *ProgressReporter) Start(message string) secondary.Progress {
	if r.animate {
		spinner, err := pterm.DefaultSpinner.WithWriter(r.out).WithRemoveWhenDone(false).Start(message)
		if err == nil {
			return &spinnerProgress{spinner: spinner}
		}
	}
	return &lineProgress{out: r.out}
}

// Warn reports a non-fatal problem.
func (r *ProgressReporter) Warn(message string) {
	pterm.Fprintln(r.out, pterm.Yellow("! "+message))
}

type spinnerProgress struct {
	spinner *pterm.SpinnerPrinter
}

func (p *spinnerProgress) Success(message string) { p.spinner.Success(message) }
func (p *spinnerProgress) Fail(message string)    { p.spinner.Fail(message) }

type lineProgress struct {
	out io.Writer
}

func (p *lineProgress) Success(message string) {
	pterm.Fprintln(p.out, pterm.Green("✓ ")+message)
}

func (p *lineProgress) Fail(message string) {
	pterm.Fprintln(p.out, pterm.Red("✗ ")+message)
}

// Ensure ProgressReporter implements the interface
var _ secondary.ProgressReporter = (*ProgressReporter)(nil)
