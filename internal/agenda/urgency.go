package agenda

// DefaultHorizon is the distance in days assumed for tasks without a
// deadline. Its log2 is the baseline urgency of a plain task.
const DefaultHorizon = 8

// Urgency scores a task due in dist days (negative when overdue) with
// priority p. Lower scores are more urgent.
//
// The score is floor(log2(dist)) - p for dist >= 0. Overdue tasks score
// -(floor(log2(-dist)) + overdueOffset) - p, which puts any overdue task
// ahead of any task not yet due, regardless of either priority.
func Urgency(dist int, p Priority) int {
	return magnitude(dist) - int(p)
}

// overdueOffset is one step past today plus the spread between
// PriorityHigh and PriorityLow.
const overdueOffset = 1 + int(PriorityHigh-PriorityLow)

func magnitude(dist int) int {
	if dist < 0 {
		return -(log2(-dist) + overdueOffset)
	}
	return log2(dist)
}

// log2 is the integer base-2 logarithm by repeated right shift; 0 and 1
// both yield 0.
func log2(n int) int {
	m := 0
	for n >>= 1; n > 0; n >>= 1 {
		m++
	}
	return m
}

// reset loads the per-computation state of every task from its declaration.
func (a *Agenda) reset(today int, overdueAsDone bool) {
	for _, t := range a.tasks {
		t.mark = unvisited
		t.urgency = 0
		t.effPriority = t.priority
		t.effDone = t.done
		t.hasDeadline = t.due != nil
		if t.hasDeadline {
			t.dist = *t.due - today
		} else {
			t.dist = DefaultHorizon
		}
		if overdueAsDone && t.hasDeadline && t.dist < 0 {
			t.effDone = true
		}
	}
}

// propagate walks order from tail to head, so every task is scored after
// all of its dependents have pushed their deadline and priority into it.
//
// A prerequisite must be finished one day before its dependent's deadline;
// when several dependents constrain it the nearest deadline wins. A
// prerequisite is never less important than any of its dependents.
func (a *Agenda) propagate(order []int) {
	tightened, raised := 0, 0
	for i := len(order) - 1; i >= 0; i-- {
		t := a.tasks[order[i]]
		t.urgency = Urgency(t.dist, t.effPriority)

		for _, ref := range t.deps {
			dep := a.tasks[ref]
			if t.hasDeadline {
				if !dep.hasDeadline || t.dist-1 < dep.dist {
					dep.dist = t.dist - 1
					tightened++
				}
				dep.hasDeadline = true
			}
			if t.effPriority > dep.effPriority {
				dep.effPriority = t.effPriority
				raised++
			}
		}
	}
	a.logger.Debug("propagated urgency", "tasks", len(order), "deadlines_tightened", tightened, "priorities_raised", raised)
}
