package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// Constructor: NewSynced()
// =============================================================================

func TestNewSynced(t *testing.T) {
	s, err := NewSynced[int](4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Cap())
	assert.True(t, s.IsEmpty())

	_, err = NewSynced[int](0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

// =============================================================================
// Delegated operations
// =============================================================================

func TestSynced_Operations(t *testing.T) {
	s, err := NewSynced[string](3)
	require.NoError(t, err)

	_, err = s.Front()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.Back()
	assert.ErrorIs(t, err, ErrEmpty)

	s.Push("a")
	s.Push("b")
	s.Push("c")
	evicted, ok := s.PushEvict("d")
	assert.True(t, ok)
	assert.Equal(t, "a", evicted)

	assert.Equal(t, []string{"b", "c", "d"}, s.Snapshot())
	assert.Equal(t, []string{"c", "d"}, s.Last(2))

	v, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	front, _ := s.Front()
	back, _ := s.Back()
	assert.Equal(t, "b", front)
	assert.Equal(t, "d", back)

	next, err := s.Erase(0)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
	assert.Equal(t, 2, s.Len())

	_, err = s.Erase(5)
	assert.ErrorIs(t, err, ErrOutOfRange)

	s.Do(func(w *Window[string]) {
		for _, p := range w.Pointers() {
			*p = "x" + *p
		}
	})
	assert.Equal(t, []string{"xc", "xd"}, s.Snapshot())

	var sum int
	s.View(func(w *Window[string]) {
		for v := range w.Values() {
			sum += len(v)
		}
	})
	assert.Equal(t, 4, sum)

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 3, s.Cap())
}

// =============================================================================
// Concurrency
// =============================================================================

func TestSynced_ConcurrentPush(t *testing.T) {
	const (
		writers   = 8
		perWriter = 1000
		capacity  = 64
	)
	s, err := NewSynced[int](capacity)
	require.NoError(t, err)

	var g errgroup.Group
	for w := range writers {
		g.Go(func() error {
			for i := range perWriter {
				s.Push(w*perWriter + i)
			}
			return nil
		})
		g.Go(func() error {
			for range perWriter {
				if n := s.Len(); n > capacity {
					t.Errorf("Len() = %d exceeds capacity", n)
				}
				_ = s.Last(4)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	snap := s.Snapshot()
	assert.Len(t, snap, capacity)

	// Each writer's values must still appear in the order it pushed them.
	last := make(map[int]int)
	for _, v := range snap {
		writer := v / perWriter
		if prev, ok := last[writer]; ok {
			assert.Less(t, prev, v)
		}
		last[writer] = v
	}
}
