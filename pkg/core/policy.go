package core

import "fmt"

// Policy governs what happens when a requested digest has no record yet.
type Policy string

const (
	// PolicyAsk looks up first and asks the user before creating.
	PolicyAsk Policy = "ask"
	// PolicyAdd skips the lookup and goes straight to create/edit.
	PolicyAdd Policy = "add"
	// PolicySkip looks up and reports a miss without creating.
	PolicySkip Policy = "skip"
)

// ParsePolicy validates a policy name from configuration or flags.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAsk, PolicyAdd, PolicySkip:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown policy %q (want ask, add or skip)", s)
}
