// Package worker runs independent jobs, such as self-play games, on a fixed
// set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// WorkItem is one job. Index is the job's position in the batch and Seed
// feeds its random source, so a job's output does not depend on which
// worker ran it.
type WorkItem struct {
	Index int
	Seed  uint64
}

// ProcessResult is the outcome of one WorkItem. Value is typed by the
// caller's ProcessFunc.
type ProcessResult struct {
	Index int
	Value any
	Err   error
}

// ProcessFunc runs a single job. It should return early when ctx is done.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool bound to ctx. Cancelling ctx has the same effect
// as Stop. Defaults: 1 worker, buffer size of 10.
func NewPool(ctx context.Context, processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// TrySubmit queues an item without blocking. It returns false if the buffer
// is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop. Queued items are drained without being
// processed and running jobs see their context cancelled.
func (p *Pool) Stop() {
	p.stopped.Store(true)
	p.cancel()
}

// IsStopped reports whether Stop was called or the parent context is done.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel. Submit must not be called after Close.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	p.cancel()
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items on a new pool and returns one result per item, in
// item order. items[i].Index must be i. Items skipped because ctx was
// cancelled have a nil Value and the context's error.
func Run(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(ctx, processFunc, opts...)
	pool.Start()

	go func() {
		defer pool.Close()
		for _, item := range items {
			if !pool.Submit(item) {
				return
			}
		}
	}()

	results := make([]ProcessResult, len(items))
	done := make([]bool, len(items))
	for res := range pool.Results() {
		if res.Index >= 0 && res.Index < len(items) {
			results[res.Index] = res
			done[res.Index] = true
		}
	}

	for i := range results {
		if !done[i] {
			results[i] = ProcessResult{Index: i, Err: context.Cause(pool.ctx)}
		}
	}
	return results
}
