// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package natsort

import (
	"slices"
	"strings"
)

// Less determines if a naturally comes before b. Unlike Compare it will
// fall back to a normal string comparison which considers spaces if the
// two would otherwise be equal. That helps ensure the stability of sorts.
func Less(a, b string) bool {
	return cmp(a, b) < 0
}

// LessFold is Less ignoring case, falling back to the case sensitive
// order when the two only differ by case.
func LessFold(a, b string) bool {
	if r := cmp(strings.ToLower(a), strings.ToLower(b)); r != 0 {
		return r < 0
	}
	return cmp(a, b) < 0
}

func cmp(a, b string) int {
	if r := Compare(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Strings natural sorts a slice of strings.
func Strings(s []string) {
	slices.SortFunc(s, cmp)
}

// StringsAreSorted tests whether a slice of strings is natural sorted.
func StringsAreSorted(s []string) bool {
	return slices.IsSortedFunc(s, cmp)
}

// SortFold natural sorts s by the case folded key of each element.
func SortFold[T any](s []T, key func(T) string) {
	slices.SortStableFunc(s, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case LessFold(ka, kb):
			return -1
		case LessFold(kb, ka):
			return +1
		}
		return 0
	})
}
