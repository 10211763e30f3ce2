package sanitizer

import "strings"

// FilterEmpty removes whitespace-only entries, such as blank lines in
// pasted enrollment input.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0)
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// Deduplicate removes repeated entries, preserving first-occurrence order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0)

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
