// Package parallel fans pixel work out over a fixed set of workers. Pixel
// operations are independent per pixel, so rows can be processed in chunks
// with no coordination beyond completion.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs closures on a fixed set of worker goroutines. With a single
// worker the pool degenerates to inline execution, so callers need no
// separate serial path.
type Pool struct {
	wg   sync.WaitGroup
	work chan func()
	stop sync.Once
}

// Start launches a pool. workers below one means one worker per available
// CPU.
func Start(workers int) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{}
	if workers > 1 {
		p.work = make(chan func(), workers)
		for range workers {
			p.wg.Go(func() {
				for f := range p.work {
					f()
				}
			})
		}
	}
	return p
}

// Do schedules f, blocking while the queue is full. An inline pool runs f
// before returning.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Close stops accepting work and waits for the workers to drain what was
// already scheduled. Close is idempotent.
func (p *Pool) Close() {
	if p.work == nil {
		return
	}
	p.stop.Do(func() { close(p.work) })
	p.wg.Wait()
}
