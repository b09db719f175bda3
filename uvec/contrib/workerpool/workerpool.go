// Copyright 2025 The go-uvec Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting lane
// kernels across goroutines. A Pool is created once and reused across many
// calls, so per-call goroutine spawning never dominates short kernels.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(dst), func(start, end int) {
//	    bulk.AddTo(dst[start:end], a[start:end], b[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-uvec/uvec"
)

// Pool is a fixed set of goroutines fed through a buffered channel.
// ParallelFor and ParallelForBatched may be called from several goroutines
// at once, but not concurrently with Close.
//
// Calls may nest: a task may itself call ParallelFor on the same pool.
// A caller waiting for its ranges runs queued work instead of idling, and
// work that does not fit in the queue runs on the submitting goroutine.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	uvec.Logger().Debug("workerpool: started", "workers", numWorkers)
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.run()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work drains. It is idempotent.
// Calls made after Close run sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		uvec.Logger().Debug("workerpool: closed", "workers", p.numWorkers)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.submit(workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		})
	}
	p.wait(&wg)
}

// ParallelForBatched hands out [0, n) in batches of batchSize through an
// atomic counter, so workers that finish early take more batches.
// fn receives (start, end) for one batch at a time.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.submit(workItem{
			fn: func() {
				for {
					start := int(next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		})
	}
	p.wait(&wg)
}

func (item workItem) run() {
	item.fn()
	item.barrier.Done()
}

// submit queues item, or runs it on the caller if the queue is full.
func (p *Pool) submit(item workItem) {
	select {
	case p.workC <- item:
	default:
		item.run()
	}
}

// wait blocks until wg is done, running queued items in the meantime so
// that nested calls always make progress.
func (p *Pool) wait(wg *sync.WaitGroup) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			return
		case item, ok := <-p.workC:
			if !ok {
				<-done
				return
			}
			item.run()
		}
	}
}
