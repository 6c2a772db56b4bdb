package registry

import "fmt"

// UnknownResourceError reports a symbolic name with no registered mapping.
// It is raised before any load attempt is made.
type UnknownResourceError struct {
	Kind Kind
	Name string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown %s %q: no registered mapping", e.Kind, e.Name)
}
