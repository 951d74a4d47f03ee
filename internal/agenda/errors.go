package agenda

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCyclicDependency is returned by Compute when tasks depend on each
	// other in a loop.
	ErrCyclicDependency = errors.New("cyclic dependency between tasks")
	// ErrUndefinedReference is returned by Compute when a task is named as a
	// prerequisite but never declared.
	ErrUndefinedReference = errors.New("task mentioned but not defined")
	// ErrInvalidRecord is returned by Ingest for records that cannot name a task.
	ErrInvalidRecord = errors.New("invalid task record")
)

// CycleError reports the task at which a dependency cycle was detected.
type CycleError struct {
	Scope string
	Name  string
	// Path lists the task labels around the cycle, starting and ending with
	// the same task.
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: %s", e.Name, ErrCyclicDependency)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Name, ErrCyclicDependency, strings.Join(e.Path, " -> "))
}

// Unwrap returns ErrCyclicDependency.
func (e *CycleError) Unwrap() error {
	return ErrCyclicDependency
}

// UndefinedError reports a prerequisite that was never declared.
type UndefinedError struct {
	Scope string
	Name  string
	// ReferencedBy is the first task that named it, if known.
	ReferencedBy string
}

func (e *UndefinedError) Error() string {
	if e.ReferencedBy == "" {
		return fmt.Sprintf("task %q: %s", e.Name, ErrUndefinedReference)
	}
	return fmt.Sprintf("task %q (required by %q): %s", e.Name, e.ReferencedBy, ErrUndefinedReference)
}

// Unwrap returns ErrUndefinedReference.
func (e *UndefinedError) Unwrap() error {
	return ErrUndefinedReference
}

func invalidRecordf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...))
}
