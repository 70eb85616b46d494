package pmatch

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// CountBy groups targets by key and counts the members of each group.
func CountBy[T any, K comparable](targets []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, t := range targets {
		counts[key(t)]++
	}
	return counts
}
