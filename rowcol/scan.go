package rowcol

import (
	"math"
)

// MaxWord is the largest value a row or a col can hold.
const MaxWord = uint64(math.MaxUint64)

const (
	// Any value above cutoff overflows after the next multiplication.
	cutoff = MaxWord / 10
	// With value == cutoff only digits up to maxLastDigit still fit.
	maxLastDigit = MaxWord % 10
)

// scanUint consumes the digit run that starts exactly at s[i]. It returns the
// accumulated value and the number of digits consumed, so n == 0 means there
// was no digit at i at all. ok is false if the run does not fit into uint64;
// v and n are meaningless in that case.
func scanUint(s string, i int) (v uint64, n int, ok bool) {
	start := i
	for ; i < len(s); i++ {
		d := uint64(s[i] - '0')
		if d > 9 {
			break
		}
		if v > cutoff || (v == cutoff && d > maxLastDigit) {
			return 0, 0, false
		}
		v = v*10 + d
	}

	return v, i - start, true
}
