package services

import "strings"

// Predicate reports whether an item passes one filter. Predicates compose
// by logical AND; an unset filter is represented by a predicate that
// matches everything, never one that matches nothing.
type Predicate[T any] func(T) bool

// ApplyFilters returns the items passing every predicate. With no
// predicates the input contents come back unchanged.
func ApplyFilters[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		ok := true
		for _, p := range preds {
			if !p(it) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out
}

// FieldEquals filters on exact field value; an empty filter value matches
// everything.
func FieldEquals[T any](want string, get func(T) string) Predicate[T] {
	if want == "" {
		return func(T) bool { return true }
	}
	return func(it T) bool { return get(it) == want }
}

// TextSearch matches the query case-insensitively against the entity's
// allowlisted fields. Queries shorter than MinSearchLength match
// everything (the "show all" fallback).
func TextSearch[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.TrimSpace(query)
	if len(query) < MinSearchLength {
		return func(T) bool { return true }
	}
	q := strings.ToLower(query)
	return func(it T) bool {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// RatingEquals filters feedback on an exact rating; zero means unset.
func RatingEquals[T any](want int, get func(T) int) Predicate[T] {
	if want == 0 {
		return func(T) bool { return true }
	}
	return func(it T) bool { return get(it) == want }
}
