package services

// uniqueBy de-duplicates by key keeping the last occurrence, preserving the
// position of each key's first appearance. With current items first and
// incoming appended, incoming values win on key collision.
func uniqueBy[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if pos, ok := index[k]; ok {
			out[pos] = it
			continue
		}
		index[k] = len(out)
		out = append(out, it)
	}
	return out
}
