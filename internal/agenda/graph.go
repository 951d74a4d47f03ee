package agenda

// frame is one level of the explicit DFS stack: the task being visited and
// the index of its next prerequisite edge to follow.
type frame struct {
	ref  int
	next int
}

// checkDefined fails on the first task, in creation order, that was only
// ever mentioned as a prerequisite.
func (a *Agenda) checkDefined() error {
	for _, t := range a.tasks {
		if t.defined {
			continue
		}
		err := &UndefinedError{Scope: t.key.scope, Name: t.key.name}
		if t.referrer >= 0 {
			err.ReferencedBy = a.tasks[t.referrer].label()
		}
		return err
	}
	return nil
}

// sequence orders every task after all of its prerequisites.
//
// It is a three-colour depth-first search started from each unvisited task in
// creation order; tasks are appended in postorder. Meeting a task that is
// still in progress means the edge closes a cycle.
func (a *Agenda) sequence() ([]int, error) {
	order := make([]int, 0, len(a.tasks))
	var stack []frame

	for root := range a.tasks {
		if a.tasks[root].mark != unvisited {
			continue
		}
		a.tasks[root].mark = inProgress
		stack = append(stack[:0], frame{ref: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			t := a.tasks[top.ref]
			if top.next < len(t.deps) {
				dep := t.deps[top.next]
				top.next++
				switch a.tasks[dep].mark {
				case finished:
					continue
				case inProgress:
					return nil, a.cycleError(stack, dep)
				}
				a.tasks[dep].mark = inProgress
				stack = append(stack, frame{ref: dep})
				continue
			}
			t.mark = finished
			order = append(order, top.ref)
			stack = stack[:len(stack)-1]
		}
	}
	return order, nil
}

// cycleError builds the error for the back edge from the top of stack to dep.
func (a *Agenda) cycleError(stack []frame, dep int) error {
	start := 0
	for i, f := range stack {
		if f.ref == dep {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, a.tasks[f.ref].label())
	}
	path = append(path, a.tasks[dep].label())

	t := a.tasks[dep]
	return &CycleError{Scope: t.key.scope, Name: t.key.name, Path: path}
}
