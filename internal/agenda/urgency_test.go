package agenda

import (
	"testing"
)

func TestUrgency(t *testing.T) {
	tests := []struct {
		dist int
		pri  Priority
		want int
	}{
		{DefaultHorizon, PriorityNormal, 3},
		{0, PriorityNormal, 0},
		{1, PriorityNormal, 0},
		{2, PriorityNormal, 1},
		{3, PriorityNormal, 1},
		{4, PriorityHigh, 1},
		{16, PriorityLow, 5},
		{-1, PriorityNormal, -3},
		{-1, PriorityLow, -2},
		{-2, PriorityNormal, -4},
		{-3, PriorityNormal, -4},
		{-4, PriorityNormal, -5},
		{-100, PriorityHigh, -10},
	}
	for _, tt := range tests {
		if got := Urgency(tt.dist, tt.pri); got != tt.want {
			t.Errorf("Urgency(%d, %v): got %d, want %d", tt.dist, tt.pri, got, tt.want)
		}
	}
}

func TestOverdueOutranksAnyUpcomingTask(t *testing.T) {
	priorities := []Priority{PriorityLow, PriorityNormal, PriorityHigh}
	for _, late := range priorities {
		for _, early := range priorities {
			for overdue := -64; overdue < 0; overdue++ {
				for upcoming := 0; upcoming <= 64; upcoming++ {
					if Urgency(overdue, late) >= Urgency(upcoming, early) {
						t.Fatalf("Urgency(%d, %v)=%d not below Urgency(%d, %v)=%d",
							overdue, late, Urgency(overdue, late), upcoming, early, Urgency(upcoming, early))
					}
				}
			}
		}
	}
}

func TestOverdueLowPriorityRanksBeforeHighPriorityDueToday(t *testing.T) {
	a := New()
	mustIngest(t, a,
		Record{Name: "today-high", Priority: PriorityHigh, Due: day(10)},
		Record{Name: "overdue-low", Priority: PriorityLow, Due: day(9)},
	)
	got, err := a.Compute(10, false)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "overdue-low" {
		t.Errorf("ranked: got %v, want overdue-low first", names(got))
	}
}

func TestIsolatedTaskUsesOwnFields(t *testing.T) {
	a := New()
	mustIngest(t, a,
		Record{Name: "solo", Priority: PriorityHigh, Due: day(116)},
		Record{Name: "other", Priority: PriorityLow},
	)
	got, err := a.Compute(100, false)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got[0].Name != "solo" || got[0].Urgency != Urgency(16, PriorityHigh) {
		t.Errorf("solo: got %+v, want urgency %d", got[0], Urgency(16, PriorityHigh))
	}
	if got[1].Urgency != Urgency(DefaultHorizon, PriorityLow) {
		t.Errorf("other: got urgency %d, want %d", got[1].Urgency, Urgency(DefaultHorizon, PriorityLow))
	}
}

func TestDeadlinePropagation(t *testing.T) {
	tests := []struct {
		name     string
		recs     []Record
		task     string
		wantDist int
	}{
		{
			name: "prerequisite without deadline",
			recs: []Record{
				{Name: "x", Due: day(10), Deps: []string{"y"}},
				{Name: "y"},
			},
			task:     "y",
			wantDist: 9,
		},
		{
			name: "prerequisite with later deadline",
			recs: []Record{
				{Name: "x", Due: day(10), Deps: []string{"y"}},
				{Name: "y", Due: day(20)},
			},
			task:     "y",
			wantDist: 9,
		},
		{
			name: "prerequisite with earlier deadline keeps it",
			recs: []Record{
				{Name: "x", Due: day(10), Deps: []string{"y"}},
				{Name: "y", Due: day(2)},
			},
			task:     "y",
			wantDist: 2,
		},
		{
			name: "nearest dependent deadline wins",
			recs: []Record{
				{Name: "far", Due: day(10), Deps: []string{"y"}},
				{Name: "near", Due: day(4), Deps: []string{"y"}},
				{Name: "y"},
			},
			task:     "y",
			wantDist: 3,
		},
		{
			name: "nearest wins regardless of declaration order",
			recs: []Record{
				{Name: "near", Due: day(4), Deps: []string{"y"}},
				{Name: "far", Due: day(10), Deps: []string{"y"}},
				{Name: "y", Due: day(30)},
			},
			task:     "y",
			wantDist: 3,
		},
		{
			name: "inherited deadline flows down a chain",
			recs: []Record{
				{Name: "a", Due: day(10), Deps: []string{"b"}},
				{Name: "b", Deps: []string{"c"}},
				{Name: "c"},
			},
			task:     "c",
			wantDist: 8,
		},
		{
			name: "dependent without deadline leaves prerequisite alone",
			recs: []Record{
				{Name: "x", Deps: []string{"y"}},
				{Name: "y", Due: day(30)},
			},
			task:     "y",
			wantDist: 30,
		},
		{
			name: "far dependent deadline replaces default horizon",
			recs: []Record{
				{Name: "x", Due: day(40), Deps: []string{"y"}},
				{Name: "y"},
			},
			task:     "y",
			wantDist: 39,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			mustIngest(t, a, tt.recs...)
			if _, err := a.Compute(0, false); err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			tk := lookup(t, a, "", tt.task)
			if tk.dist != tt.wantDist {
				t.Errorf("dist(%s): got %d, want %d", tt.task, tk.dist, tt.wantDist)
			}
			if !tk.hasDeadline {
				t.Errorf("hasDeadline(%s): got false, want true", tt.task)
			}
			if tk.urgency != Urgency(tt.wantDist, tk.effPriority) {
				t.Errorf("urgency(%s): got %d, want %d", tt.task, tk.urgency, Urgency(tt.wantDist, tk.effPriority))
			}
		})
	}
}

func TestPriorityPropagation(t *testing.T) {
	a := New()
	mustIngest(t, a,
		Record{Name: "top", Priority: PriorityHigh, Deps: []string{"mid"}},
		Record{Name: "mid", Priority: PriorityLow, Deps: []string{"low"}},
		Record{Name: "low", Priority: PriorityNormal},
		Record{Name: "side", Priority: PriorityLow, Deps: []string{"low"}},
	)
	got, err := a.Compute(0, false)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	for _, name := range []string{"top", "mid", "low"} {
		if p := lookup(t, a, "", name).effPriority; p != PriorityHigh {
			t.Errorf("effPriority(%s): got %v, want A", name, p)
		}
	}
	if p := lookup(t, a, "", "side").effPriority; p != PriorityLow {
		t.Errorf("effPriority(side): got %v, want C", p)
	}
	if len(got) != 1 || got[0].Name != "low" || got[0].PriorityLetter != 'A' {
		t.Errorf("ranked: got %+v, want only low with priority A", got)
	}
	if lookup(t, a, "", "low").priority != PriorityNormal {
		t.Error("declared priority must not change")
	}
}

func TestPropagationIsIdempotent(t *testing.T) {
	a := New()
	mustIngest(t, a,
		Record{Name: "release", Priority: PriorityLow, Due: day(20), Deps: []string{"todo", "manual"}},
		Record{Name: "todo", Deps: []string{"parser", "algor"}},
		Record{Name: "algor", Priority: PriorityHigh, Deps: []string{"parser"}},
		Record{Name: "parser", Due: day(5)},
		Record{Name: "manual", Priority: PriorityLow, Due: day(2)},
	)
	if err := a.checkDefined(); err != nil {
		t.Fatalf("checkDefined failed: %v", err)
	}
	a.reset(0, false)
	order, err := a.sequence()
	if err != nil {
		t.Fatalf("sequence failed: %v", err)
	}

	type state struct {
		dist        int
		hasDeadline bool
		pri         Priority
		urgency     int
	}
	snapshot := func() []state {
		out := make([]state, len(a.tasks))
		for i, tk := range a.tasks {
			out[i] = state{tk.dist, tk.hasDeadline, tk.effPriority, tk.urgency}
		}
		return out
	}

	a.propagate(order)
	first := snapshot()
	a.propagate(order)
	second := snapshot()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("%s: first pass %+v, second pass %+v", a.tasks[i].label(), first[i], second[i])
		}
	}
}

func TestComputeIsRepeatable(t *testing.T) {
	a := New()
	mustIngest(t, a,
		Record{Name: "x", Priority: PriorityHigh, Due: day(6), Deps: []string{"y"}},
		Record{Name: "y", Priority: PriorityLow},
		Record{Name: "z"},
	)
	first, err := a.Compute(0, false)
	if err != nil {
		t.Fatalf("first Compute failed: %v", err)
	}
	second, err := a.Compute(0, false)
	if err != nil {
		t.Fatalf("second Compute failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
