// Package util provides common utility functions.
package util

func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}

// CloneStrings returns a copy of s backed by a fresh array, nil stays nil.
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
