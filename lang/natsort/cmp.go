// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package natsort

// Compare returns -1, 0 or +1 depending on whether a sorts before, the
// same as, or after b in natural order. Runs of digits compare by
// numeric value, or left aligned as a fraction when either run starts
// with a zero. Spaces are ignored.
func Compare(a, b string) int {
	var ai, bi int
	for {
		ca, cb := at(a, ai), at(b, bi)

		for isSpace(ca) {
			ai++
			ca = at(a, ai)
		}
		for isSpace(cb) {
			bi++
			cb = at(b, bi)
		}

		if isDigit(ca) && isDigit(cb) {
			var r int
			if ca == '0' || cb == '0' {
				r = compareLeft(a[ai:], b[bi:])
			} else {
				r = compareRight(a[ai:], b[bi:])
			}
			if r != 0 {
				return r
			}
		}

		switch {
		case ca == 0 && cb == 0:
			return 0
		case ca < cb:
			return -1
		case ca > cb:
			return +1
		}
		ai++
		bi++
	}
}

// compareRight compares two right aligned digit runs; the longest run
// wins, otherwise the first differing digit decides.
func compareRight(a, b string) int {
	bias := 0
	for i := 0; ; i++ {
		ca, cb := at(a, i), at(b, i)
		switch {
		case !isDigit(ca) && !isDigit(cb):
			return bias
		case !isDigit(ca):
			return -1
		case !isDigit(cb):
			return +1
		case ca < cb:
			if bias == 0 {
				bias = -1
			}
		case ca > cb:
			if bias == 0 {
				bias = +1
			}
		}
	}
}

// compareLeft compares two left aligned digit runs; the first
// differing digit decides.
func compareLeft(a, b string) int {
	for i := 0; ; i++ {
		ca, cb := at(a, i), at(b, i)
		switch {
		case !isDigit(ca) && !isDigit(cb):
			return 0
		case !isDigit(ca):
			return -1
		case !isDigit(cb):
			return +1
		case ca < cb:
			return -1
		case ca > cb:
			return +1
		}
	}
}

func at(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
