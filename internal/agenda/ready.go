package agenda

import (
	"sort"

	"github.com/nibzard/agenda-go/internal/utils"
)

// Stats summarises the last computation.
type Stats struct {
	Total   int
	Done    int
	Blocked int
	Ready   int
}

// blocked reports whether any prerequisite of t is unfinished.
func (a *Agenda) blocked(t *task) bool {
	for _, ref := range t.deps {
		if !a.tasks[ref].effDone {
			return true
		}
	}
	return false
}

// rank returns the actionable tasks, most urgent first. Ties keep the order
// in which tasks were first declared.
func (a *Agenda) rank() []DisplayRecord {
	stats := Stats{Total: len(a.tasks)}
	ready := make([]*task, 0, len(a.tasks))
	for _, t := range a.tasks {
		if t.effDone {
			stats.Done++
			continue
		}
		if a.blocked(t) {
			stats.Blocked++
			continue
		}
		ready = append(ready, t)
	}
	stats.Ready = len(ready)
	a.stats = stats

	sort.Slice(ready, func(i, j int) bool {
		if ready[i].urgency != ready[j].urgency {
			return ready[i].urgency < ready[j].urgency
		}
		return ready[i].seq < ready[j].seq
	})

	out := make([]DisplayRecord, 0, len(ready))
	for _, t := range ready {
		rec := DisplayRecord{
			Scope:          t.key.scope,
			Name:           t.key.name,
			Description:    t.description,
			PriorityLetter: t.effPriority.Letter(),
			Urgency:        t.urgency,
		}
		if t.due != nil {
			rec.DueDate = utils.FormatDay(*t.due)
		}
		out = append(out, rec)
	}
	return out
}

// Stats returns the counts from the last successful Compute.
func (a *Agenda) Stats() Stats {
	return a.stats
}
