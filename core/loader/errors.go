package loader

import "fmt"

// LoadError reports a load that failed after exhausting its attempt budget.
// The identifier is not poisoned: a later Load for the same identifier starts
// a fresh attempt sequence.
type LoadError struct {
	// ID is the resource identifier that failed to load.
	ID string
	// Attempts is the number of attempts actually made.
	Attempts int
	// Last is the error returned by the final attempt.
	Last error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load resource %q after %d attempts: %v", e.ID, e.Attempts, e.Last)
}

// Unwrap exposes the last underlying cause for errors.Is / errors.As.
func (e *LoadError) Unwrap() error {
	return e.Last
}
