package xform

import (
	"fmt"
	"time"
)

// Diff is the difference between the two methods for one operation.
type Diff struct {
	Op      Op
	Library M4x4
	Manual  M4x4
	Max     float32 // largest absolute element difference
}

// Within reports whether the difference is at most tol.
func (d Diff) Within(tol float32) bool {
	return d.Max <= tol
}

// Compare builds every operation of s with both methods. It returns one Diff
// per operation in order and the difference between the composed matrices.
func Compare(s *Script) ([]Diff, float32, error) {
	lib, err := Build(s, Library)
	if err != nil {
		return nil, 0, fmt.Errorf("library: %w", err)
	}
	man, err := Build(s, Manual)
	if err != nil {
		return nil, 0, fmt.Errorf("manual: %w", err)
	}

	diffs := make([]Diff, len(s.Ops))
	for _, op := range s.Ops {
		diffs[op.Order] = Diff{
			Op:      op,
			Library: lib[op.Order],
			Manual:  man[op.Order],
			Max:     lib[op.Order].MaxAbsDiff(man[op.Order]),
		}
	}
	return diffs, lib.Compose().MaxAbsDiff(man.Compose()), nil
}

// Timing is the result of Benchmark.
type Timing struct {
	Method     Method
	Iterations int
	Total      time.Duration
}

// PerBuild returns the average time of one Build + Compose.
func (t Timing) PerBuild() time.Duration {
	if t.Iterations == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Iterations)
}

// Benchmark times iterations of Build followed by Compose with method m.
func Benchmark(s *Script, m Method, iterations int) (Timing, error) {
	if iterations < 1 {
		iterations = 1
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		q, err := Build(s, m)
		if err != nil {
			return Timing{}, err
		}
		_ = q.Compose()
	}
	return Timing{Method: m, Iterations: iterations, Total: time.Since(start)}, nil
}
