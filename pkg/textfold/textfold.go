// Package textfold provides case-insensitive comparison helpers built on
// Unicode case folding rather than ASCII lowercasing.
package textfold

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s. Two strings are equal ignoring
// case when their folded forms are equal.
//
// A fresh Caser is built per call since cases.Caser is not safe for
// concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Equal reports whether a and b are equal under Unicode case folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains reports whether substr is within s, ignoring case.
// An empty substr is contained in every string.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
