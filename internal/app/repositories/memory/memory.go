package memory

import "sort"

// sortByID orders a slice ascending by a derived int64 key
func sortByID[T any](items []T, key func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
