package agenda

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// Option configures an Agenda.
type Option func(*Agenda)

// WithLogger sets the logger used for debug tracing of each pass.
func WithLogger(logger *log.Logger) Option {
	return func(a *Agenda) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Agenda collects task declarations and ranks them.
type Agenda struct {
	// tasks is the arena; handles are indices and creation order is
	// traversal order.
	tasks    []*task
	index    map[taskKey]int
	declared int
	logger   *log.Logger
	stats    Stats
}

// New creates an empty agenda.
func New(opts ...Option) *Agenda {
	a := &Agenda{
		index:  make(map[taskKey]int),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Len returns the number of tasks known to the agenda, including tasks that
// were only mentioned as prerequisites.
func (a *Agenda) Len() int {
	return len(a.tasks)
}

// Ingest registers or updates the task described by rec.
//
// Declaring a task twice replaces its description, priority, deadline and
// done flag; prerequisites accumulate across declarations.
func (a *Agenda) Ingest(rec Record) error {
	if err := checkName(rec.Name); err != nil {
		return invalidRecordf("task name: %v", err)
	}
	if !rec.Priority.Valid() {
		return invalidRecordf("task %q: priority %d out of range", rec.Name, rec.Priority)
	}
	for _, dep := range rec.Deps {
		if err := checkName(dep); err != nil {
			return invalidRecordf("task %q: dependency name: %v", rec.Name, err)
		}
	}

	ref := a.intern(rec.Scope, rec.Name)
	a.declare(ref, rec)
	return nil
}

// intern returns the handle for (scope, name), creating an undefined entry
// on first mention.
func (a *Agenda) intern(scope, name string) int {
	key := taskKey{scope: scope, name: name}
	if ref, ok := a.index[key]; ok {
		return ref
	}
	ref := len(a.tasks)
	a.tasks = append(a.tasks, &task{key: key, referrer: -1})
	a.index[key] = ref
	return ref
}

func (a *Agenda) declare(ref int, rec Record) {
	t := a.tasks[ref]
	t.description = strings.TrimSpace(rec.Description)
	if t.description == "" {
		t.description = rec.Name
	}
	t.priority = rec.Priority
	t.due = nil
	if rec.Due != nil {
		due := *rec.Due
		t.due = &due
	}
	t.done = rec.Done
	if !t.defined {
		t.seq = a.declared
		a.declared++
		t.defined = true
	}

	for _, name := range rec.Deps {
		dep := a.intern(rec.Scope, name)
		if a.tasks[dep].referrer < 0 {
			a.tasks[dep].referrer = ref
		}
		t.deps = append(t.deps, dep)
	}
}

func checkName(name string) error {
	if name == "" {
		return errors.New("empty")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%q contains whitespace", name)
	}
	return nil
}
