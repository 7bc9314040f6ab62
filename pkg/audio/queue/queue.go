// Package queue provides a bounded FIFO of float32 samples. It bridges
// backends with push-style callbacks (pulse, malgo) and pull-style
// device loops (oto) to the blocking ReadFrames/WriteFrames contract.
package queue

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pamiq/pamiq-io/pkg/device"
)

type Queue struct {
	mu      sync.Mutex
	buf     []float32
	head    int
	count   int
	ended   bool
	closed  bool
	dropped uint64
	changed chan struct{}
}

// New returns a queue holding up to capacity samples.
func New(capacity int) *Queue {
	return &Queue{
		buf:     make([]float32, capacity),
		changed: make(chan struct{}),
	}
}

// signal wakes every waiter; must be called with mu held.
func (q *Queue) signal() {
	close(q.changed)
	q.changed = make(chan struct{})
}

func (q *Queue) Cap() int {
	return len(q.buf)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped returns how many samples Push discarded so far.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

func (q *Queue) put(samples []float32) {
	for _, s := range samples {
		q.buf[(q.head+q.count)%len(q.buf)] = s
		q.count++
	}
}

func (q *Queue) pop(dst []float32) int {
	n := len(dst)
	if n > q.count {
		n = q.count
	}
	for i := 0; i < n; i++ {
		dst[i] = q.buf[q.head]
		q.head = (q.head + 1) % len(q.buf)
		q.count--
	}
	return n
}

// Push appends samples without blocking, discarding the oldest queued
// samples if there is no room. It is meant to be called from backend
// audio callbacks, which must never block.
func (q *Queue) Push(samples []float32) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.ended {
		return
	}
	if len(samples) > len(q.buf) {
		q.dropped += uint64(len(samples) - len(q.buf))
		samples = samples[len(samples)-len(q.buf):]
	}
	if overflow := q.count + len(samples) - len(q.buf); overflow > 0 {
		var sink [64]float32
		for overflow > 0 {
			n := overflow
			if n > len(sink) {
				n = len(sink)
			}
			q.pop(sink[:n])
			overflow -= n
			q.dropped += uint64(n)
		}
	}
	q.put(samples)
	q.signal()
}

// Read blocks until at least one sample is available and copies up to
// len(dst) samples. It returns io.EOF once the queue has ended and
// drained, and device.ErrClosed after Close.
func (q *Queue) Read(ctx context.Context, dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return 0, device.ErrClosed
		}
		if q.count > 0 {
			n := q.pop(dst)
			q.signal()
			q.mu.Unlock()
			return n, nil
		}
		if q.ended {
			q.mu.Unlock()
			return 0, io.EOF
		}
		ch := q.changed
		q.mu.Unlock()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-ch:
		}
	}
}

// ReadFull blocks until dst is filled, the stream ends, or the queue
// closes, and reports how many samples it copied. A device stop handler
// calling EndWrites unblocks it mid-fill with io.EOF.
func (q *Queue) ReadFull(ctx context.Context, dst []float32) (int, error) {
	filled := 0
	for filled < len(dst) {
		n, err := q.Read(ctx, dst[filled:])
		filled += n
		if err != nil {
			return filled, err
		}
	}
	return filled, nil
}

// TryRead copies up to len(dst) samples without blocking.
func (q *Queue) TryRead(dst []float32) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.count == 0 {
		return 0
	}
	n := q.pop(dst)
	q.signal()
	return n
}

// Ended reports whether EndWrites was called and the queue drained.
func (q *Queue) Ended() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ended && q.count == 0
}

// Write blocks until the whole block is queued, never discarding queued
// data. If no space frees up within timeout, it fails with
// device.ErrBufferOverrun; a prefix that was already queued stays
// queued.
func (q *Queue) Write(ctx context.Context, samples []float32, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for len(samples) > 0 {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return device.ErrClosed
		}
		if q.ended {
			q.mu.Unlock()
			return fmt.Errorf("the queue has ended: %w", device.ErrClosed)
		}
		if free := len(q.buf) - q.count; free > 0 {
			n := free
			if n > len(samples) {
				n = len(samples)
			}
			q.put(samples[:n])
			samples = samples[n:]
			q.signal()
			q.mu.Unlock()
			continue
		}
		ch := q.changed
		q.mu.Unlock()

		wait := time.Until(deadline)
		if wait <= 0 {
			return device.ErrBufferOverrun
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
			return device.ErrBufferOverrun
		case <-ch:
			t.Stop()
		}
	}
	return nil
}

// EndWrites marks the end of the stream: readers drain the remaining
// samples and then get io.EOF.
func (q *Queue) EndWrites() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ended {
		return
	}
	q.ended = true
	q.signal()
}

// Close unblocks every waiter; subsequent reads and writes fail with
// device.ErrClosed.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	q.signal()
	return nil
}
