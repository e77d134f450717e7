// Package window provides Window, a fixed-capacity sequence that keeps only the
// most recently pushed elements.
//
// When a full Window receives a new element the oldest one is evicted first,
// which makes it a building block for sliding windows: the last N samples, a
// bounded history, or a capped log.
//
//	w, _ := window.New[int](3)
//	w.PushMany(1, 2, 3, 4)
//	fmt.Println(w) // [2 3 4]
//
// Window is not safe for concurrent use. Wrap it in Synced, or guard it with
// your own lock.
package window
