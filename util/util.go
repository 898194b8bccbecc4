package util

import (
	"golang.org/x/exp/constraints"
)

// SaturatingSub returns a - b, floored at zero instead of wrapping
func SaturatingSub[A constraints.Unsigned](a A, b A) A {
	if b >= a {
		return 0
	}
	return a - b
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
