package roster

import (
	"slices"
	"strings"
)

// SortedBySection returns a new slice ordered by section, then team, then
// name. The sort is stable and the input slice is left untouched.
func SortedBySection(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		if c := strings.Compare(a.Section, b.Section); c != 0 {
			return c
		}
		if c := strings.Compare(a.Team, b.Team); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// SortedByTeam returns a new slice ordered by team, then name. The sort is
// stable and the input slice is left untouched.
func SortedByTeam(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		if c := strings.Compare(a.Team, b.Team); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// SortedByName returns a new slice ordered by name, then email. The sort is
// stable and the input slice is left untouched.
func SortedByName(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})
	return out
}
