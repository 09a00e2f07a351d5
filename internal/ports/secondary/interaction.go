package secondary

import "context"

// Prompter defines the secondary port for interactive input.
// Dismissing a prompt returns an error matching primary.ErrPromptDismissed.
type Prompter interface {
	// PromptName asks for a name until validate returns an empty message.
	PromptName(ctx context.Context, prompt, defaultValue string, validate func(string) string) (string, error)

	// PickOne asks the user to choose one of options and returns its index.
	PickOne(ctx context.Context, title string, options []string) (int, error)
}

// ProgressReporter defines the secondary port for progress and warning output.
type ProgressReporter interface {
	// Start begins a progress indicator for a multi-step operation.
	Start(message string) Progress

	// Warn reports a non-fatal problem.
	Warn(message string)
}

// Progress is a running progress indicator.
type Progress interface {
	Success(message string)
	Fail(message string)
}
