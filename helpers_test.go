package twounordered

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// traceToTest routes the core tracer to t until the returned teardown is
// called.
func traceToTest(t *testing.T, level tracing.TraceLevel) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	return func() {
		teardown()
		gtrace.CoreTracer = gtrace.NoOpTrace
	}
}

// sameElements reports whether a and b hold the same elements with the same
// multiplicity, disregarding order.
func sameElements[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[E]int, len(a))
	for _, x := range a {
		count[x]++
	}
	for _, x := range b {
		count[x]--
		if count[x] < 0 {
			return false
		}
	}
	return true
}

func expectRegions(t *testing.T, v *Vecs[int], first, second []int) {
	t.Helper()
	a, b := v.Slices()
	if !sameElements(a, first) {
		t.Errorf("expected first vector to hold %v, has %v", first, a)
	}
	if !sameElements(b, second) {
		t.Errorf("expected second vector to hold %v, has %v", second, b)
	}
	if err := v.Check(); err != nil {
		t.Error(err)
	}
}

func expectSlices(t *testing.T, v *Vecs[int], first, second []int) {
	t.Helper()
	a, b := v.Slices()
	if !slices.Equal(a, first) || !slices.Equal(b, second) {
		t.Errorf("expected (%v, %v), have (%v, %v)", first, second, a, b)
	}
}

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, did not panic", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, have %v", target, r)
		}
	}()
	f()
}
