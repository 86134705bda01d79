package atopile

import "sort"

// naturalCompare orders strings with numeric awareness: runs of digits are
// compared by value, so "R2" sorts before "R10". Non-digit bytes compare as
// usual, and zero-padded runs order before their unpadded value ("P01"
// before "P1"), so distinct strings never compare equal. Returns -1, 0,
// or 1.
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ra, ia := digitRun(a, i)
			rb, jb := digitRun(b, j)
			if c := compareDigitRuns(ra, rb); c != 0 {
				return c
			}
			i, j = ia, jb
			continue
		}

		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

// naturalSort sorts a slice of strings in natural order, in place.
func naturalSort(items []string) {
	sort.Slice(items, func(i, j int) bool {
		return naturalCompare(items[i], items[j]) < 0
	})
}

// digitRun returns the run of digits starting at i and the index just past
// it.
func digitRun(s string, i int) (string, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[start:i], i
}

// compareDigitRuns compares two digit runs by numeric value. Leading zeros
// are ignored for the value comparison; on a value tie the raw runs decide,
// so "01" orders before "1". Distinct runs never compare equal.
func compareDigitRuns(a, b string) int {
	ta := trimLeadingZeros(a)
	tb := trimLeadingZeros(b)
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
