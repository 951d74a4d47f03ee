// Package agenda ranks tasks by urgency over a dependency graph.
//
// Tasks are ingested as Records, interned by (scope, name) and linked to
// their prerequisites. Compute then runs four passes:
//
//  1. Sequencing: a depth-first walk orders every task after all of its
//     prerequisites and rejects cycles and undefined references.
//  2. Propagation: walking that order backwards, each task snapshots its
//     urgency and hands a deadline one day earlier and its own priority down
//     to its prerequisites.
//  3. Filtering: done tasks and tasks with an unfinished prerequisite are
//     dropped.
//  4. Ranking: the remaining tasks are stable-sorted by urgency.
//
// # Urgency
//
// Urgency is the integer log2 of the days left until the effective deadline,
// minus the priority (+1 for A, 0 for B, -1 for C). Tasks without a deadline
// count as due in eight days, so a plain task scores 3. Lower is more urgent.
// Overdue tasks score below every task that is not overdue at equal priority.
//
// An Agenda is built once per run and is not safe for concurrent use.
package agenda
