package window

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-window/pkg/utils"
)

// Window is a bounded sequence: a growable array with a hard upper bound on
// its length. Pushing onto a full window evicts the oldest element first.
//
// Index 0 is always the oldest live element and Len()-1 the newest.
// Elements are kept in a ring that starts small and doubles as elements
// arrive, up to the capacity rounded up to a power of two, so Push and head
// eviction are amortized O(1).
//
// A Window must be created with New. It is NOT thread-safe; see Synced.
type Window[T any] struct {
	buf        []T
	mask       int
	head       int // physical position of index 0
	size       int
	capacity   int
	maxStorage int // upper bound for len(buf)
}

// New creates an empty Window that holds at most capacity elements.
// No storage is allocated until the first Push.
// Returns ErrInvalidCapacity if capacity is not positive or exceeds
// utils.MaxPowerOfTwo.
func New[T any](capacity int) (*Window[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "new window with capacity %d", capacity)
	}
	maxStorage, err := utils.CeilToPowerOfTwo(capacity)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCapacity, "new window with capacity %d", capacity)
	}
	return &Window[T]{
		capacity:   capacity,
		maxStorage: maxStorage,
	}, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[T any](capacity int) *Window[T] {
	w, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return w
}

// pos maps a logical index to its physical slot.
func (w *Window[T]) pos(i int) int {
	return (w.head + i) & w.mask
}

func (w *Window[T]) checkIndex(i int) error {
	if i < 0 || i >= w.size {
		return errors.Wrapf(ErrOutOfRange, "index %d with length %d", i, w.size)
	}
	return nil
}

// Push appends v at the tail. If the window is full the oldest element is
// dropped before v is stored, so Len never exceeds Cap.
func (w *Window[T]) Push(v T) {
	w.PushEvict(v)
}

// PushMany pushes each value in order.
func (w *Window[T]) PushMany(vs ...T) {
	for _, v := range vs {
		w.PushEvict(v)
	}
}

// PushEvict is like Push but also returns the element that was evicted to make
// room, if any.
func (w *Window[T]) PushEvict(v T) (evicted T, ok bool) {
	if w.size == w.capacity {
		var zero T
		evicted, ok = w.buf[w.head], true
		w.buf[w.head] = zero
		w.head = w.pos(1)
		w.size--
	}
	if w.size == len(w.buf) {
		w.grow()
	}
	w.buf[w.pos(w.size)] = v
	w.size++
	return evicted, ok
}

// grow doubles the ring storage, never past maxStorage, and moves the live
// elements to the start of the new storage.
func (w *Window[T]) grow() {
	n := min(max(len(w.buf)*2, initialStorage), w.maxStorage)

	buf := make([]T, n)
	head, tail := w.segments()
	copy(buf[copy(buf, head):], tail)

	w.buf = buf
	w.mask = n - 1
	w.head = 0
}

// At returns the element at logical index i.
func (w *Window[T]) At(i int) (T, error) {
	if err := w.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return w.buf[w.pos(i)], nil
}

// Ptr returns a pointer to the element at logical index i.
// The pointer is valid until the next Push, Erase or Clear.
func (w *Window[T]) Ptr(i int) (*T, error) {
	if err := w.checkIndex(i); err != nil {
		return nil, err
	}
	return &w.buf[w.pos(i)], nil
}

// Set replaces the element at logical index i.
func (w *Window[T]) Set(i int, v T) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	w.buf[w.pos(i)] = v
	return nil
}

// Get returns the element at logical index i without checking it against Len.
// The result for i outside [0, Len()) is unspecified: it may be a zero value,
// a stale element, or a panic.
func (w *Window[T]) Get(i int) T {
	return w.buf[w.pos(i)]
}

// Front returns the oldest element.
func (w *Window[T]) Front() (T, error) {
	if w.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "front")
	}
	return w.buf[w.head], nil
}

// FrontPtr returns a pointer to the oldest element.
func (w *Window[T]) FrontPtr() (*T, error) {
	if w.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "front")
	}
	return &w.buf[w.head], nil
}

// Back returns the newest element.
func (w *Window[T]) Back() (T, error) {
	if w.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "back")
	}
	return w.buf[w.pos(w.size-1)], nil
}

// BackPtr returns a pointer to the newest element.
func (w *Window[T]) BackPtr() (*T, error) {
	if w.size == 0 {
		return nil, errors.Wrap(ErrEmpty, "back")
	}
	return &w.buf[w.pos(w.size-1)], nil
}

// Len returns the number of live elements.
func (w *Window[T]) Len() int {
	return w.size
}

// Cap returns the maximum number of elements, as passed to New.
func (w *Window[T]) Cap() int {
	return w.capacity
}

// IsEmpty reports whether the window holds no elements.
func (w *Window[T]) IsEmpty() bool {
	return w.size == 0
}

// IsFull reports whether the next Push will evict.
func (w *Window[T]) IsFull() bool {
	return w.size == w.capacity
}

// Clear removes all elements. Storage grown so far is kept for reuse.
func (w *Window[T]) Clear() {
	clear(w.buf)
	w.head = 0
	w.size = 0
}

// Erase removes the element at logical index i and returns the index of its
// successor, which equals Len() when the newest element was removed.
// Whichever side of i is shorter is shifted, so relative order is preserved.
func (w *Window[T]) Erase(i int) (int, error) {
	if err := w.checkIndex(i); err != nil {
		return 0, err
	}

	var zero T
	if i < w.size/2 {
		// Shift the older side one slot towards the tail.
		for j := i; j > 0; j-- {
			w.buf[w.pos(j)] = w.buf[w.pos(j-1)]
		}
		w.buf[w.head] = zero
		w.head = w.pos(1)
	} else {
		for j := i; j < w.size-1; j++ {
			w.buf[w.pos(j)] = w.buf[w.pos(j+1)]
		}
		w.buf[w.pos(w.size-1)] = zero
	}
	w.size--
	return i, nil
}

// segments returns the live elements as at most two contiguous slices of the
// backing storage, oldest first.
func (w *Window[T]) segments() (head, tail []T) {
	if w.size == 0 {
		return nil, nil
	}
	end := w.head + w.size
	if end <= len(w.buf) {
		return w.buf[w.head:end], nil
	}
	return w.buf[w.head:], w.buf[:end-len(w.buf)]
}

// Slice returns a copy of the live elements, oldest first.
func (w *Window[T]) Slice() []T {
	head, tail := w.segments()
	out := make([]T, 0, w.size)
	out = append(out, head...)
	return append(out, tail...)
}

// Last returns a copy of the newest n elements, oldest first.
// n is clamped to [0, Len()].
func (w *Window[T]) Last(n int) []T {
	if n > w.size {
		n = w.size
	}
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = w.buf[w.pos(w.size-n+i)]
	}
	return out
}

// String formats the live elements like a slice.
func (w *Window[T]) String() string {
	return fmt.Sprint(w.Slice())
}
