package utils

import "errors"

const (
	bitSize = 32 << (^uint(0) >> 63)

	// MaxPowerOfTwo is the largest power of two an int can hold.
	MaxPowerOfTwo = 1 << (bitSize - 2)
)

// ErrTooLarge is returned by CeilToPowerOfTwo when no int power of two is >= n.
var ErrTooLarge = errors.New("utils: argument is too large")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns the smallest power of two that is >= n, and at least 2.
// Ring storage sized this way can map positions with a mask instead of a modulo.
func CeilToPowerOfTwo(n int) (int, error) {
	if n > MaxPowerOfTwo {
		return 0, ErrTooLarge
	}
	if n <= 2 {
		return 2, nil
	}

	p := 4
	for p < n {
		p <<= 1
	}
	return p, nil
}
