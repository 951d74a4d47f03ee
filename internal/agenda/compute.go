package agenda

// Compute ranks the actionable tasks for the given day number.
//
// With overdueAsDone set, tasks whose own deadline is before today are
// treated as done. Compute fails without output on an undefined
// prerequisite (ErrUndefinedReference) or a cycle (ErrCyclicDependency).
// It may be called more than once; every call starts from the declared
// state.
func (a *Agenda) Compute(today int, overdueAsDone bool) ([]DisplayRecord, error) {
	a.stats = Stats{}
	if err := a.checkDefined(); err != nil {
		return nil, err
	}
	a.reset(today, overdueAsDone)

	order, err := a.sequence()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("sequenced tasks", "count", len(order))

	a.propagate(order)
	ranked := a.rank()
	a.logger.Debug("ranked tasks", "ready", a.stats.Ready, "done", a.stats.Done, "blocked", a.stats.Blocked)
	return ranked, nil
}
