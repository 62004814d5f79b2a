package crawl

import (
	"sync"

	"github.com/fwojciec/rsearch"
)

type poolState int

const (
	poolRunning poolState = iota
	poolDraining
	poolStopped
)

// Pool runs submitted tasks on a fixed number of reusable workers pulling
// from one shared FIFO queue. Submission is synchronized, so a single pool
// may be shared by many concurrent producers.
type Pool struct {
	workers int
	wg      sync.WaitGroup

	mu    sync.Mutex
	cond  *sync.Cond
	queue []func() // nil entry is a stop sentinel
	state poolState
}

// NewPool starts a pool with n workers. Non-positive n starts one worker.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{workers: n}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 {
			p.cond.Wait()
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		if task == nil {
			return
		}
		task()
	}
}

// Submit enqueues a task for execution. The queue is unbounded, so Submit
// never blocks. Returns EUNAVAILABLE once shutdown has begun.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return rsearch.Errorf(rsearch.EINVALID, "nil task")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != poolRunning {
		return rsearch.Errorf(rsearch.EUNAVAILABLE, "pool is shutting down")
	}
	p.queue = append(p.queue, task)
	p.cond.Signal()
	return nil
}

// Shutdown drains the queue and stops all workers, blocking until every
// worker has exited. Every task submitted before Shutdown runs exactly
// once: one stop sentinel per worker is appended behind the pending tasks,
// so the FIFO queue empties before any worker sees its sentinel. A shared
// stop flag would not give that guarantee. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.state == poolRunning {
		p.state = poolDraining
		for i := 0; i < p.workers; i++ {
			p.queue = append(p.queue, nil)
		}
		p.cond.Broadcast()
	}
	p.mu.Unlock()

	p.wg.Wait()

	p.mu.Lock()
	p.state = poolStopped
	p.mu.Unlock()
}
