package soft

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool schedules the per-pixel parallel map of the CPU path. Fragment
// invocations are independent by construction, so rows are handed to
// workers through an atomic cursor with no ordering guarantee and no
// shared mutable state beyond the disjoint framebuffer rows each worker
// writes.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return p.workers }

// For runs fn for every index in [0, n), distributing indexes across
// workers, and returns when all calls have completed. fn must be safe to
// call concurrently with distinct indexes.
func (p *Pool) For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
