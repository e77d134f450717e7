package window

import "sync"

// Synced guards a Window with a RWMutex so it can be shared between
// goroutines. Readers get copies; pointer accessors are not exposed.
type Synced[T any] struct {
	mu sync.RWMutex
	w  *Window[T]
}

// NewSynced creates a Synced window that holds at most capacity elements.
func NewSynced[T any](capacity int) (*Synced[T], error) {
	w, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Synced[T]{w: w}, nil
}

// Push appends v, evicting the oldest element when full.
func (s *Synced[T]) Push(v T) {
	s.mu.Lock()
	s.w.Push(v)
	s.mu.Unlock()
}

// PushEvict appends v and returns the evicted element, if any.
func (s *Synced[T]) PushEvict(v T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.PushEvict(v)
}

// At returns the element at logical index i.
func (s *Synced[T]) At(i int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.At(i)
}

// Front returns the oldest element.
func (s *Synced[T]) Front() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Front()
}

// Back returns the newest element.
func (s *Synced[T]) Back() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Back()
}

// Len returns the number of live elements.
func (s *Synced[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Len()
}

// Cap returns the capacity.
func (s *Synced[T]) Cap() int {
	// capacity never changes after New
	return s.w.Cap()
}

// IsEmpty reports whether the window is empty.
func (s *Synced[T]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.IsEmpty()
}

// Clear removes all elements.
func (s *Synced[T]) Clear() {
	s.mu.Lock()
	s.w.Clear()
	s.mu.Unlock()
}

// Erase removes the element at logical index i and returns its successor's index.
func (s *Synced[T]) Erase(i int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Erase(i)
}

// Snapshot returns a copy of all elements, oldest first.
func (s *Synced[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Slice()
}

// Last returns a copy of the newest n elements, oldest first.
func (s *Synced[T]) Last(n int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Last(n)
}

// Do runs fn with exclusive access to the underlying window.
// fn must not retain the window, its cursors or pointers after returning.
func (s *Synced[T]) Do(fn func(w *Window[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.w)
}

// View runs fn under the read lock. fn must not modify the window or retain
// it, its cursors or pointers after returning.
func (s *Synced[T]) View(fn func(w *Window[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.w)
}
