package soft

import (
	"sync/atomic"
	"testing"
)

func TestPool_ForCoversAllIndexes(t *testing.T) {
	p := NewPool(4)

	const n = 1000
	var hits [n]atomic.Int32
	p.For(n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	if w := NewPool(0).Workers(); w <= 0 {
		t.Errorf("default worker count = %d, want > 0", w)
	}
	if w := NewPool(-5).Workers(); w <= 0 {
		t.Errorf("worker count for negative input = %d, want > 0", w)
	}
}

func TestPool_ForEmpty(t *testing.T) {
	p := NewPool(2)
	called := false
	p.For(0, func(int) { called = true })
	if called {
		t.Error("fn called for n=0")
	}
}

func TestPool_SingleWorker(t *testing.T) {
	p := NewPool(1)
	order := make([]int, 0, 10)
	p.For(10, func(i int) { order = append(order, i) })
	for i, got := range order {
		if got != i {
			t.Fatalf("single worker order[%d] = %d, want %d", i, got, i)
		}
	}
}
