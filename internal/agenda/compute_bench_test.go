package agenda

import (
	"strconv"
	"testing"
)

// buildAgenda creates n tasks where every task depends on the two before it.
func buildAgenda(b *testing.B, n int) *Agenda {
	b.Helper()
	a := New()
	for i := 0; i < n; i++ {
		rec := Record{Name: "t" + strconv.Itoa(i), Priority: Priority(i%3 - 1)}
		if i%7 == 0 {
			rec.Due = day(18332 + i%30)
		}
		for _, d := range []int{i - 1, i - 2} {
			if d >= 0 {
				rec.Deps = append(rec.Deps, "t"+strconv.Itoa(d))
			}
		}
		if err := a.Ingest(rec); err != nil {
			b.Fatalf("Ingest failed: %v", err)
		}
	}
	return a
}

// BenchmarkCompute benchmarks a full computation over 100 tasks.
func BenchmarkCompute(b *testing.B) {
	a := buildAgenda(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Compute(18332, false); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkComputeLarge benchmarks a full computation over 10000 tasks.
func BenchmarkComputeLarge(b *testing.B) {
	a := buildAgenda(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Compute(18332, false); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkIngest benchmarks interning 1000 declarations.
func BenchmarkIngest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buildAgenda(b, 1000)
	}
}

// BenchmarkUrgency benchmarks the urgency formula.
func BenchmarkUrgency(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Urgency(i%200-100, PriorityHigh)
	}
}
