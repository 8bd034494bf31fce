package core

// Prompter is the capability the reconciler uses to obtain answers from
// the user. Implementations live outside the core (terminal, tests);
// adhering to this interface keeps the reconciler testable without a TTY.
type Prompter interface {
	// Confirm asks a yes/no question. def is the answer implied by an
	// empty response. Returns ErrCancelled if the user aborts.
	Confirm(question string, def bool) (bool, error)

	// Input solicits one line of free text. Returns ErrCancelled if the
	// user aborts.
	Input(label string) (string, error)
}
