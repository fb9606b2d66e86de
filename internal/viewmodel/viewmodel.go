// Package viewmodel holds screen-scoped state and derives observable result
// streams from it. Each view model owns a single-slot trigger: setting the
// trigger is the only way to issue a new request, and only the outcome of the
// most recent trigger is ever forwarded to the observer.
package viewmodel

import (
	"context"
	"sync"
)

// Outcome is the success-or-failure result of one derived operation. Every
// trigger that is not superseded produces exactly one Outcome.
type Outcome[T any] struct {
	Value T
	Err   error
}

type tagged[T any] struct {
	gen   int
	value T
}

// switcher re-issues transform for every new trigger value. A trigger set
// while the previous one is still waiting replaces it, and an outcome whose
// trigger was superseded while in flight is dropped rather than delivered.
// In-flight work is not cancelled, only ignored.
type switcher[T, R any] struct {
	transform func(context.Context, T) (R, error)

	mu  sync.Mutex
	gen int

	triggers  chan tagged[T]
	outcomes  chan Outcome[R]
	closeOnce sync.Once
}

func newSwitcher[T, R any](transform func(context.Context, T) (R, error)) *switcher[T, R] {
	s := &switcher[T, R]{
		transform: transform,
		triggers:  make(chan tagged[T], 1),
		outcomes:  make(chan Outcome[R], 1),
	}
	go s.run()

	return s
}

// Set overwrites the trigger slot, discarding an older pending value.
func (s *switcher[T, R]) Set(v T) {
	s.mu.Lock()
	s.gen++
	t := tagged[T]{gen: s.gen, value: v}
	s.mu.Unlock()

	for {
		select {
		case s.triggers <- t:
			return
		default:
			select {
			case <-s.triggers:
			default:
			}
		}
	}
}

// Outcomes returns the derived stream. The slot holds at most the latest
// outcome; a stale value that was never read is replaced, not queued.
func (s *switcher[T, R]) Outcomes() <-chan Outcome[R] {
	return s.outcomes
}

// Close stops the worker once all pending triggers have been consumed.
func (s *switcher[T, R]) Close() {
	s.closeOnce.Do(func() {
		close(s.triggers)
	})
}

func (s *switcher[T, R]) run() {
	for t := range s.triggers {
		value, err := s.transform(context.Background(), t.value)
		if !s.isLatest(t.gen) {
			continue
		}
		s.deliver(Outcome[R]{Value: value, Err: err})
	}
}

func (s *switcher[T, R]) isLatest(gen int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen == gen
}

func (s *switcher[T, R]) deliver(o Outcome[R]) {
	for {
		select {
		case s.outcomes <- o:
			return
		default:
			select {
			case <-s.outcomes:
			default:
			}
		}
	}
}
