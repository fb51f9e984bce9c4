package todo

import (
	"context"
	"sync"
)

// Save tracks one asynchronous write. A nil *Save is a write that was never
// needed and reports success.
type Save struct {
	Key string

	done chan struct{}
	err  error
}

func newSave(key string) *Save {
	return &Save{Key: key, done: make(chan struct{})}
}

func (s *Save) resolve(err error) {
	s.err = err
	close(s.done)
}

// Done is closed once the write has finished.
func (s *Save) Done() <-chan struct{} {
	if s == nil {
		return closed
	}
	return s.done
}

// Err is the write result, nil until Done is closed.
func (s *Save) Err() error {
	if s == nil {
		return nil
	}
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Wait blocks until the write finishes or ctx ends. Giving up on ctx does not
// cancel the write.
func (s *Save) Wait(ctx context.Context) error {
	if s == nil {
		return nil
	}
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

type job struct {
	key   string
	value string
	saves []*Save
}

// writer applies queued writes in issue order on a single goroutine. Queued
// jobs for a key are folded into the newest one, whose payload already holds
// the later state; the folded saves share its result.
type writer struct {
	mu      sync.Mutex
	queue   []*job
	wake    chan struct{}
	closing bool
	stopped chan struct{}

	apply func(key, value string) error
}

func newWriter(apply func(key, value string) error) *writer {
	w := &writer{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
		apply:   apply,
	}
	go w.run()
	return w
}

// enqueue must be called in mutation order; the store calls it while holding
// its own lock.
func (w *writer) enqueue(key, value string) *Save {
	s := newSave(key)
	w.mu.Lock()
	folded := false
	for i, j := range w.queue {
		if j.key == key {
			j.value = value
			j.saves = append(j.saves, s)
			// Move to the back so it still lands after anything issued in
			// between.
			w.queue = append(append(w.queue[:i:i], w.queue[i+1:]...), j)
			folded = true
			break
		}
	}
	if !folded {
		w.queue = append(w.queue, &job{key: key, value: value, saves: []*Save{s}})
	}
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return s
}

func (w *writer) run() {
	defer close(w.stopped)
	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			if w.closing {
				w.mu.Unlock()
				return
			}
			w.mu.Unlock()
			<-w.wake
			continue
		}
		j := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		err := w.apply(j.key, j.value)
		for _, s := range j.saves {
			s.resolve(err)
		}
	}
}

// close lets queued writes drain and waits for them, or for ctx.
func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	w.closing = true
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}

	select {
	case <-w.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
