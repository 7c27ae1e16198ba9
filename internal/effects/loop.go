// Package effects holds the UI controllers of the landing page. Every controller
// is a reducer driven by a Loop: events are applied one at a time on a single
// goroutine, and nothing mutates the state once the loop is unmounted.
package effects

import (
	"context"
	"errors"
	"sync"
)

// ErrUnmounted is returned when an event is dispatched to a loop that has been
// torn down (or was never mounted).
var ErrUnmounted = errors.New("effects: controller is not mounted")

// Reducer computes the next state from the current state and an event.
// Reducers must be pure.
type Reducer[S any, E any] func(state S, event E) S

// ChangeFunc is called on the loop goroutine after an event changed the state.
type ChangeFunc[S any] func(prev, next S)

type transition[S any] struct {
	prev, next S
}

type envelope[S any, E any] struct {
	event E
	reply chan transition[S]
}

// Loop owns a piece of state and serializes every mutation through a reducer.
type Loop[S comparable, E any] struct {
	reduce   Reducer[S, E]
	onChange ChangeFunc[S]

	mu      sync.RWMutex
	state   S
	mounted bool

	events   chan envelope[S, E]
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// LoopOption configures a Loop.
type LoopOption[S comparable, E any] func(*Loop[S, E])

// WithChangeFunc registers a callback for state changes.
func WithChangeFunc[S comparable, E any](fn ChangeFunc[S]) LoopOption[S, E] {
	return func(l *Loop[S, E]) {
		l.onChange = fn
	}
}

// NewLoop creates an unmounted loop holding the initial state.
func NewLoop[S comparable, E any](initial S, reduce Reducer[S, E], opts ...LoopOption[S, E]) *Loop[S, E] {
	l := &Loop[S, E]{
		reduce: reduce,
		state:  initial,
		events: make(chan envelope[S, E]),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Mount starts the loop goroutine. Cancelling ctx unmounts the loop.
// Mounting twice, or after Unmount, is a no-op.
func (l *Loop[S, E]) Mount(ctx context.Context) {
	l.mu.Lock()
	if l.mounted || l.isStopped() {
		l.mu.Unlock()
		return
	}
	l.mounted = true
	l.mu.Unlock()

	go l.run()
	if ctx.Done() == nil {
		return
	}
	go func() {
		select {
		case <-ctx.Done():
			l.Unmount()
		case <-l.done:
		}
	}()
}

func (l *Loop[S, E]) run() {
	defer close(l.done)
	for {
		select {
		case <-l.stop:
			return
		case env := <-l.events:
			// Only this goroutine writes state, so the reducer runs unlocked.
			prev := l.State()
			next := l.reduce(prev, env.event)
			l.mu.Lock()
			l.state = next
			l.mu.Unlock()

			if prev != next && l.onChange != nil {
				l.onChange(prev, next)
			}
			env.reply <- transition[S]{prev: prev, next: next}
		}
	}
}

// Dispatch applies an event and returns the resulting state. It blocks until the
// loop has processed the event, so the caller observes its own mutation.
func (l *Loop[S, E]) Dispatch(ctx context.Context, event E) (S, error) {
	_, next, err := l.DispatchChange(ctx, event)
	return next, err
}

// DispatchChange is Dispatch that also returns the state the event was applied to.
func (l *Loop[S, E]) DispatchChange(ctx context.Context, event E) (prev, next S, err error) {
	if l.isStopped() || !l.isMounted() {
		s := l.State()
		return s, s, ErrUnmounted
	}

	env := envelope[S, E]{event: event, reply: make(chan transition[S], 1)}
	select {
	case l.events <- env:
	case <-l.stop:
		s := l.State()
		return s, s, ErrUnmounted
	case <-ctx.Done():
		s := l.State()
		return s, s, ctx.Err()
	}

	select {
	case t := <-env.reply:
		return t.prev, t.next, nil
	case <-ctx.Done():
		s := l.State()
		return s, s, ctx.Err()
	}
}

// State returns the current state.
func (l *Loop[S, E]) State() S {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Unmount stops the loop and waits for its goroutine to exit. It is safe to call
// more than once and on a loop that was never mounted.
func (l *Loop[S, E]) Unmount() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})

	l.mu.RLock()
	mounted := l.mounted
	l.mu.RUnlock()
	if mounted {
		<-l.done
	}
}

// Mounted reports whether the loop is running.
func (l *Loop[S, E]) Mounted() bool {
	return l.isMounted() && !l.isStopped()
}

func (l *Loop[S, E]) isMounted() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mounted
}

func (l *Loop[S, E]) isStopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}
