package application

import (
	"context"
	"sync"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
)

// observers is a set of callbacks. A panicking callback is logged and does not stop the others.
type observers[T any] struct {
	mu    sync.Mutex
	next  int
	funcs map[int]func(T)
	log   logrus.FieldLogger
}

func (o *observers[T]) subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.funcs == nil {
		o.funcs = map[int]func(T){}
	}
	id := o.next
	o.next++
	o.funcs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.funcs, id)
		})
	}
}

func (o *observers[T]) notify(value T) {
	o.mu.Lock()
	funcs := make([]func(T), 0, len(o.funcs))
	for _, fn := range o.funcs {
		funcs = append(funcs, fn)
	}
	o.mu.Unlock()

	for _, fn := range funcs {
		o.call(fn, value)
	}
}

func (o *observers[T]) call(fn func(T), value T) {
	defer func() {
		if r := recover(); r != nil && o.log != nil {
			o.log.WithField("panic", r).Error("observer panicked")
		}
	}()
	fn(value)
}

// fetchGuard hands out fetch generations. Starting a fetch cancels the one before it.
type fetchGuard struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func (g *fetchGuard) begin(parent context.Context) (context.Context, uint64, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	g.generation++
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	generation := g.generation

	return ctx, generation, func() {
		g.mu.Lock()
		if g.generation == generation {
			g.cancel = nil
		}
		g.mu.Unlock()
		cancel()
	}
}

func (g *fetchGuard) current(generation uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation == generation
}

// stateStore guards one state value. Observers receive a copy after every change, outside the lock.
type stateStore[S any] struct {
	mu        sync.RWMutex
	state     S
	clone     func(S) S
	observers observers[S]
	fetches   fetchGuard
	clock     ports.Clock
}

func newStateStore[S any](initial S, clone func(S) S, clock ports.Clock, log logrus.FieldLogger) *stateStore[S] {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &stateStore[S]{
		state:     initial,
		clone:     clone,
		observers: observers[S]{log: log},
		clock:     clock,
	}
}

func (s *stateStore[S]) snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.state)
}

func (s *stateStore[S]) subscribe(fn func(S)) func() {
	return s.observers.subscribe(fn)
}

func (s *stateStore[S]) update(fn func(*S)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.clone(s.state)
	s.mu.Unlock()

	s.observers.notify(snapshot)
}

// updateIfCurrent applies fn only while generation is still the latest fetch.
func (s *stateStore[S]) updateIfCurrent(generation uint64, fn func(*S)) bool {
	s.mu.Lock()
	if !s.fetches.current(generation) {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	snapshot := s.clone(s.state)
	s.mu.Unlock()

	s.observers.notify(snapshot)
	return true
}

func (s *stateStore[S]) read(fn func(S)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// asyncSlices selects the fetch and mutate slices of a collection state.
type asyncSlices[S any] struct {
	fetch  func(*S) *domain.AsyncSlice
	mutate func(*S) *domain.AsyncSlice
}

// runFetch performs one generation-guarded list fetch. A superseded fetch returns
// domain.ErrStaleFetch and leaves state untouched.
func runFetch[S any](ctx context.Context, store *stateStore[S], slices asyncSlices[S], load func(context.Context) (func(*S), error)) error {
	ctx, generation, done := store.fetches.begin(ctx)
	defer done()

	store.update(func(state *S) { *slices.fetch(state) = domain.LoadingSlice() })

	apply, err := load(ctx)
	if err != nil {
		if !store.updateIfCurrent(generation, func(state *S) { *slices.fetch(state) = domain.ErrorSlice(err) }) {
			return domain.ErrStaleFetch
		}
		return err
	}

	now := store.clock.Now()
	if !store.updateIfCurrent(generation, func(state *S) {
		apply(state)
		*slices.fetch(state) = domain.SuccessSlice(now)
	}) {
		return domain.ErrStaleFetch
	}
	return nil
}

// runMutation tracks one create/update/delete in the mutate slice and applies its result on success.
func runMutation[S, T any](store *stateStore[S], slices asyncSlices[S], call func() (T, error), apply func(*S, T)) (T, error) {
	store.update(func(state *S) { *slices.mutate(state) = domain.LoadingSlice() })

	result, err := call()
	if err != nil {
		store.update(func(state *S) { *slices.mutate(state) = domain.ErrorSlice(err) })
		var zero T
		return zero, err
	}

	now := store.clock.Now()
	store.update(func(state *S) {
		apply(state, result)
		*slices.mutate(state) = domain.SuccessSlice(now)
	})
	return result, nil
}
