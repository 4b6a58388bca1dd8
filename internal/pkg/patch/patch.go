// Package patch merges partial update requests, where a nil field means
// "leave unchanged", into the current state of an entity.
package patch

// Coalesce returns *ptr when the field was supplied, otherwise current.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// Changed reports whether a supplied field differs from current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
