// Package worker provides the concurrency layer for batch dataset builds:
// a fixed-size worker pool plus a YAML manifest runner.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of work.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	Err() error
}

// Pool executes jobs on a fixed number of goroutines. A collector drains
// results from the moment Start is called, so Submit never blocks on a full
// results buffer no matter how many jobs are queued.
type Pool struct {
	workers     int
	jobs        chan Job
	results     chan Result
	collected   []Result
	collectDone chan struct{}
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewPool creates a pool with the given worker count; values below one are
// raised to one.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Pool{
		workers:     workers,
		jobs:        make(chan Job, workers*2),
		results:     make(chan Result, workers*2),
		collectDone: make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the workers and the result collector.
func (p *Pool) Start() {
	go p.collect()
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.results <- job.Execute(p.ctx)
		}
	}
}

// collect owns p.collected until collectDone closes; Wait and Shutdown read
// it only after that.
func (p *Pool) collect() {
	defer close(p.collectDone)
	for r := range p.results {
		p.collected = append(p.collected, r)
	}
}

// Submit enqueues a job. Submissions after shutdown are dropped.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, waits for the workers to drain it and returns every
// result. Call exactly once, after the last Submit.
func (p *Pool) Wait() []Result {
	close(p.jobs)
	p.wg.Wait()
	p.closeResults()
	<-p.collectDone
	return p.collected
}

// Shutdown cancels in-flight jobs and releases the workers. Results already
// produced are returned.
func (p *Pool) Shutdown() []Result {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
	<-p.collectDone
	return p.collected
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() { close(p.results) })
}
