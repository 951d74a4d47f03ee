package agenda

import (
	"fmt"
	"strings"
)

// Priority is the importance of a task: +1 for A, 0 for B, -1 for C.
type Priority int

const (
	PriorityLow    Priority = -1
	PriorityNormal Priority = 0
	PriorityHigh   Priority = +1
)

// Letter returns the A/B/C letter for the priority.
func (p Priority) Letter() byte {
	switch {
	case p > PriorityNormal:
		return 'A'
	case p < PriorityNormal:
		return 'C'
	default:
		return 'B'
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p.Letter())
}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts an A, B or C letter (case-insensitive) to a Priority.
// An empty string yields PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return PriorityHigh, nil
	case "", "B":
		return PriorityNormal, nil
	case "C":
		return PriorityLow, nil
	default:
		return PriorityNormal, fmt.Errorf("invalid priority %q, must be one of: A, B, C", s)
	}
}

// Record is a decoded task declaration handed to the agenda by an ingestion
// source.
type Record struct {
	// Scope disambiguates identically named tasks from different sources.
	// Empty means the global scope.
	Scope       string
	Name        string
	Description string
	Priority    Priority
	// Due is the deadline as a day number (days since 1970-01-01), or nil.
	Due  *int
	Done bool
	// Deps names the prerequisites, resolved within Scope.
	Deps []string
}

// DisplayRecord is one ranked, actionable task ready for printing.
type DisplayRecord struct {
	Scope       string
	Name        string
	Description string
	// PriorityLetter reflects the priority after propagation from dependents.
	PriorityLetter byte
	// DueDate is the task's own deadline as YYYY-MM-DD, or empty.
	DueDate string
	Urgency int
}

type visitMark uint8

const (
	unvisited visitMark = iota
	inProgress
	finished
)

type taskKey struct {
	scope string
	name  string
}

// task is an arena entry. The first block is declared state; the second is
// per-computation state reset by Compute.
type task struct {
	key         taskKey
	description string
	priority    Priority
	due         *int
	done        bool
	deps        []int
	defined     bool
	// seq is the declaration order; forward references do not advance it.
	seq int
	// referrer is the first task that named this one as a prerequisite.
	referrer int

	dist        int
	hasDeadline bool
	effPriority Priority
	effDone     bool
	urgency     int
	mark        visitMark
}

func (t *task) label() string {
	if t.key.scope == "" {
		return t.key.name
	}
	return t.key.scope + ":" + t.key.name
}
