package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countJob struct {
	counter *atomic.Int64
	fail    bool
}

type countResult struct {
	err error
}

func (r *countResult) Err() error { return r.err }

func (j *countJob) Execute(context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countResult{err: errors.New("job failed")}
	}
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	p := NewPool(context.Background(), 4)
	p.Start()

	for i := 0; i < 20; i++ {
		p.Submit(&countJob{counter: &counter})
	}
	results := p.Wait()

	if counter.Load() != 20 {
		t.Errorf("executed %d jobs, want 20", counter.Load())
	}
	if len(results) != 20 {
		t.Errorf("collected %d results, want 20", len(results))
	}
}

func TestPool_FailuresDoNotStopSiblings(t *testing.T) {
	var counter atomic.Int64
	p := NewPool(context.Background(), 2)
	p.Start()

	for i := 0; i < 10; i++ {
		p.Submit(&countJob{counter: &counter, fail: i%2 == 0})
	}
	results := p.Wait()

	failures := 0
	for _, r := range results {
		if r.Err() != nil {
			failures++
		}
	}
	if failures != 5 {
		t.Errorf("%d failures, want 5", failures)
	}
	if counter.Load() != 10 {
		t.Errorf("executed %d jobs, want 10", counter.Load())
	}
}

func TestPool_QueueDeeperThanBuffers(t *testing.T) {
	// Both internal channels hold workers*2 entries. Submitting far past
	// that with a single worker must neither drop jobs nor block: the
	// collector drains results while submission is still in progress.
	var counter atomic.Int64
	p := NewPool(context.Background(), 1)
	p.Start()

	const jobs = 200
	done := make(chan []Result)
	go func() {
		for i := 0; i < jobs; i++ {
			p.Submit(&countJob{counter: &counter})
		}
		done <- p.Wait()
	}()

	select {
	case results := <-done:
		if counter.Load() != jobs {
			t.Errorf("executed %d jobs, want %d", counter.Load(), jobs)
		}
		if len(results) != jobs {
			t.Errorf("collected %d results, want %d", len(results), jobs)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("pool stalled: %d of %d jobs executed", counter.Load(), jobs)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	var counter atomic.Int64
	p := NewPool(context.Background(), 0)
	p.Start()
	p.Submit(&countJob{counter: &counter})
	if results := p.Wait(); len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	p := NewPool(context.Background(), 2)
	p.Start()
	p.Shutdown()

	// Submissions after shutdown must not block.
	var counter atomic.Int64
	p.Submit(&countJob{counter: &counter})
	if counter.Load() != 0 {
		t.Error("job executed after shutdown")
	}
}
