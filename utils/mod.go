package utils

import "golang.org/x/exp/slices"

// Contains reports whether item is among items, e.g. a move among the legal
// moves of a position.
func Contains[T comparable](items []T, item T) bool {
	return slices.Index(items, item) >= 0
}
