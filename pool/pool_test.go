package pool

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsEverySubmittedTask(t *testing.T) {
	p := NewWorkerPool(8)
	defer p.Close()

	var count int64
	const n = 50
	for i := 0; i < n; i++ {
		p.Submit(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	p.Wait()

	if got := atomic.LoadInt64(&count); got != n {
		t.Fatalf("expected %d tasks to run, got %d", n, got)
	}
}
