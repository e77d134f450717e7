package window_test

import (
	"errors"
	"fmt"

	"github.com/huynhanx03/go-window/pkg/datastructs/window"
)

func Example() {
	w, err := window.New[int](3)
	if err != nil {
		panic(err)
	}
	w.PushMany(1, 2, 3, 4)

	fmt.Println(w, w.Len(), w.Cap())
	front, _ := w.Front()
	back, _ := w.Back()
	fmt.Println(front, back)
	// Output:
	// [2 3 4] 3 3
	// 2 4
}

func ExampleWindow_Erase() {
	w := window.MustNew[int](5)
	w.PushMany(10, 20, 30, 40)

	next, _ := w.Erase(1)
	fmt.Println(w, next)
	// Output: [10 30 40] 1
}

func ExampleWindow_All() {
	w := window.MustNew[string](2)
	w.PushMany("a", "b", "c")
	for i, v := range w.All() {
		fmt.Println(i, v)
	}
	// Output:
	// 0 b
	// 1 c
}

func ExampleWindow_Front() {
	w := window.MustNew[int](2)
	_, err := w.Front()
	fmt.Println(errors.Is(err, window.ErrEmpty))
	// Output: true
}

func ExampleNew() {
	_, err := window.New[int](0)
	fmt.Println(err)
	// Output: new window with capacity 0: window: capacity must be positive
}
