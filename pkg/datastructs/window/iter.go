package window

import (
	"iter"

	"github.com/pkg/errors"
)

// Iterators and cursors borrow the window. Any Push, Clear or Erase that is not
// made through the cursor itself invalidates them; using an invalidated
// iterator or cursor gives unspecified results.

// All yields (index, element) pairs from oldest to newest.
func (w *Window[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < w.size; i++ {
			if !yield(i, w.buf[w.pos(i)]) {
				return
			}
		}
	}
}

// Values yields elements from oldest to newest.
func (w *Window[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < w.size; i++ {
			if !yield(w.buf[w.pos(i)]) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs from newest to oldest.
func (w *Window[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := w.size - 1; i >= 0; i-- {
			if !yield(i, w.buf[w.pos(i)]) {
				return
			}
		}
	}
}

// Pointers yields (index, pointer) pairs from oldest to newest, allowing
// elements to be modified in place.
func (w *Window[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < w.size; i++ {
			if !yield(i, &w.buf[w.pos(i)]) {
				return
			}
		}
	}
}

// Cursor is a forward position in a Window.
type Cursor[T any] struct {
	w *Window[T]
	i int
}

// Begin returns a cursor at the oldest element.
func (w *Window[T]) Begin() Cursor[T] {
	return Cursor[T]{w: w}
}

// End returns the one-past-newest cursor.
func (w *Window[T]) End() Cursor[T] {
	return Cursor[T]{w: w, i: w.size}
}

// CursorAt returns a cursor at logical index i.
func (w *Window[T]) CursorAt(i int) (Cursor[T], error) {
	if err := w.checkIndex(i); err != nil {
		return Cursor[T]{}, err
	}
	return Cursor[T]{w: w, i: i}, nil
}

// Valid reports whether the cursor points at a live element.
func (c Cursor[T]) Valid() bool {
	return c.w != nil && c.i >= 0 && c.i < c.w.size
}

// Index returns the logical index the cursor points at.
func (c Cursor[T]) Index() int {
	return c.i
}

// Next returns the cursor advanced by one.
func (c Cursor[T]) Next() Cursor[T] {
	c.i++
	return c
}

// Value returns the element under the cursor. Only call it when Valid is true.
func (c Cursor[T]) Value() T {
	return c.w.Get(c.i)
}

// Ptr returns a pointer to the element under the cursor. Only call it when
// Valid is true.
func (c Cursor[T]) Ptr() *T {
	return &c.w.buf[c.w.pos(c.i)]
}

// Erase removes the element under the cursor and returns a cursor at its
// successor, or End if it was the newest.
func (c Cursor[T]) Erase() (Cursor[T], error) {
	if c.w == nil {
		return c, errors.Wrap(ErrOutOfRange, "erase through unbound cursor")
	}
	next, err := c.w.Erase(c.i)
	if err != nil {
		return c, err
	}
	return Cursor[T]{w: c.w, i: next}, nil
}
