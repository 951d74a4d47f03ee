package agenda

import "testing"

func day(n int) *int {
	return &n
}

func mustIngest(t *testing.T, a *Agenda, recs ...Record) {
	t.Helper()
	for _, rec := range recs {
		if err := a.Ingest(rec); err != nil {
			t.Fatalf("Ingest(%q) failed: %v", rec.Name, err)
		}
	}
}

func names(recs []DisplayRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

// lookup returns the arena entry for (scope, name) or fails the test.
func lookup(t *testing.T, a *Agenda, scope, name string) *task {
	t.Helper()
	ref, ok := a.index[taskKey{scope: scope, name: name}]
	if !ok {
		t.Fatalf("task %q/%q not found", scope, name)
	}
	return a.tasks[ref]
}
